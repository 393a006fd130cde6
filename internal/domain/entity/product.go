package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. El stock por bodega vive
// en WarehouseStock, no aquí.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	CreatedBy   string // FK a User
	Status      string // active, deleted
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
