package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrWarehouseNotFound = errors.New("bodega no encontrada")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrStockNotFound     = errors.New("el producto no está asociado a la bodega")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrEmailAlreadyExists    = errors.New("el email ya está registrado")
	ErrUserNameAlreadyExists = errors.New("el nombre de usuario ya está registrado")
	ErrWarehouseNameTaken    = errors.New("ya existe una bodega con ese nombre")
	ErrWarehouseHasProducts  = errors.New("la bodega tiene productos asociados")
	ErrProductHasStock       = errors.New("el producto aún tiene stock en alguna bodega")
	ErrUnauthorized      = errors.New("no autorizado")
)
