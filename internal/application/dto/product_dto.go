package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto junto con su stock
// inicial en una bodega (una sola unidad atómica).
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	WarehouseID string          `json:"warehouseId"`
	UserID      string          `json:"userId"`
}

// Validate verifica la forma de la entrada antes de abrir transacción.
func (in CreateProductRequest) Validate() []string {
	details := validateProductFields(in.Name, in.Description, in.Price)
	if in.Stock < 1 {
		details = append(details, "stock debe ser mayor o igual a 1")
	}
	if in.WarehouseID == "" {
		details = append(details, "warehouseId es requerido")
	}
	if in.UserID == "" {
		details = append(details, "userId es requerido")
	}
	return details
}

// UpdateProductRequest entrada para actualizar un producto. Sobrescribe
// los tres campos mutables.
type UpdateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// Validate verifica la forma de la entrada antes de abrir transacción.
func (in UpdateProductRequest) Validate() []string {
	return validateProductFields(in.Name, in.Description, in.Price)
}

// UpdateProductStockRequest entrada para sobrescribir la cantidad de un
// producto en una bodega. Stock es puntero para distinguir "0" de ausente.
type UpdateProductStockRequest struct {
	Stock *int `json:"stock"`
}

// Validate verifica la forma de la entrada antes de abrir transacción.
func (in UpdateProductStockRequest) Validate() []string {
	var details []string
	if in.Stock == nil {
		details = append(details, "stock es requerido")
	} else if *in.Stock < 0 {
		details = append(details, "stock no puede ser negativo")
	}
	return details
}

func validateProductFields(name, description string, price decimal.Decimal) []string {
	var details []string
	if name == "" {
		details = append(details, "name es requerido")
	}
	if description == "" {
		details = append(details, "description es requerido")
	}
	if price.LessThan(decimal.NewFromInt(1)) {
		details = append(details, "price debe ser mayor o igual a 1")
	}
	return details
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CreatedBy   string          `json:"createdBy"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
