package entity

import "time"

// Estados visibles de una entidad. El borrado es lógico e irreversible:
// una entidad con StatusDeleted queda excluida de todas las lecturas.
const (
	StatusActive  = "active"
	StatusDeleted = "deleted"
)

// User representa un usuario del sistema. Solo se crea, nunca se
// actualiza ni se borra; Warehouse y Product lo referencian por CreatedBy.
type User struct {
	ID           string
	UserName     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Status       string // active, deleted
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
