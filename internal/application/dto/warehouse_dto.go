package dto

import "time"

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	UserID   string `json:"userId"`
}

// Validate verifica la forma de la entrada antes de abrir transacción.
func (in CreateWarehouseRequest) Validate() []string {
	var details []string
	if in.Name == "" {
		details = append(details, "name es requerido")
	}
	if in.Location == "" {
		details = append(details, "location es requerido")
	}
	if in.UserID == "" {
		details = append(details, "userId es requerido")
	}
	return details
}

// UpdateWarehouseRequest entrada para actualizar una bodega. El update
// sobrescribe todos los campos mutables (no es un patch parcial).
type UpdateWarehouseRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Validate verifica la forma de la entrada antes de abrir transacción.
func (in UpdateWarehouseRequest) Validate() []string {
	var details []string
	if in.Name == "" {
		details = append(details, "name es requerido")
	}
	if in.Location == "" {
		details = append(details, "location es requerido")
	}
	return details
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
