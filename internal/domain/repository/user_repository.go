package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Todas las lecturas devuelven solo usuarios activos; nil sin error
// significa "no existe".
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByUserName(userName string) (*entity.User, error)
}
