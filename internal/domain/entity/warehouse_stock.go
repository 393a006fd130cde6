package entity

import "time"

// WarehouseStock asocia un Product con una Warehouse y lleva la cantidad
// en stock. A lo sumo una fila activa por par (producto, bodega). No tiene
// borrado lógico: sus borrados son siempre físicos, en cascada con el
// borrado del producto o de la bodega.
type WarehouseStock struct {
	ID          string
	ProductID   string
	WarehouseID string
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
