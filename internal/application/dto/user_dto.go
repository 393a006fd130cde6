package dto

import "regexp"

var (
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	alphaNumRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	lowerRe    = regexp.MustCompile(`[a-z]`)
	upperRe    = regexp.MustCompile(`[A-Z]`)
	digitRe    = regexp.MustCompile(`[0-9]`)
)

// CreateUserRequest entrada para registrar un usuario.
type CreateUserRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate verifica la forma de la entrada antes de abrir transacción.
// Devuelve un mensaje por campo inválido; vacío si todo está bien.
func (in CreateUserRequest) Validate() []string {
	var details []string
	if len(in.UserName) < 3 {
		details = append(details, "userName debe tener al menos 3 caracteres")
	} else if !alphaNumRe.MatchString(in.UserName) {
		details = append(details, "userName debe ser alfanumérico")
	}
	if in.Email == "" {
		details = append(details, "email es requerido")
	} else if !emailRe.MatchString(in.Email) {
		details = append(details, "email debe ser válido")
	}
	if len(in.Password) < 8 {
		details = append(details, "password debe tener al menos 8 caracteres")
	} else if !lowerRe.MatchString(in.Password) || !upperRe.MatchString(in.Password) || !digitRe.MatchString(in.Password) {
		details = append(details, "password debe contener al menos una minúscula, una mayúscula y un dígito")
	}
	return details
}

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida del login: identidad y token Bearer.
type LoginResponse struct {
	UserID string `json:"user"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}
