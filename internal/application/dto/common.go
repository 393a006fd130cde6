package dto

// IDResponse respuesta mínima de una mutación: el ID de la entidad afectada.
type IDResponse struct {
	ID string `json:"id"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
