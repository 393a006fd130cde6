package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
)

func TestCreateUserRequestValidate(t *testing.T) {
	cases := []struct {
		name   string
		in     dto.CreateUserRequest
		fallas int
	}{
		{
			name:   "válido",
			in:     dto.CreateUserRequest{UserName: "maria01", Email: "maria@example.com", Password: "Secreto123"},
			fallas: 0,
		},
		{
			name:   "userName muy corto",
			in:     dto.CreateUserRequest{UserName: "ab", Email: "maria@example.com", Password: "Secreto123"},
			fallas: 1,
		},
		{
			name:   "userName con símbolos",
			in:     dto.CreateUserRequest{UserName: "maria_01!", Email: "maria@example.com", Password: "Secreto123"},
			fallas: 1,
		},
		{
			name:   "email inválido",
			in:     dto.CreateUserRequest{UserName: "maria01", Email: "no-es-email", Password: "Secreto123"},
			fallas: 1,
		},
		{
			name:   "password corto",
			in:     dto.CreateUserRequest{UserName: "maria01", Email: "maria@example.com", Password: "Ab1"},
			fallas: 1,
		},
		{
			name:   "password sin mayúscula ni dígito",
			in:     dto.CreateUserRequest{UserName: "maria01", Email: "maria@example.com", Password: "solominusculas"},
			fallas: 1,
		},
		{
			name:   "todo vacío",
			in:     dto.CreateUserRequest{},
			fallas: 3,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, tc.in.Validate(), tc.fallas)
		})
	}
}

func TestCreateWarehouseRequestValidate(t *testing.T) {
	ok := dto.CreateWarehouseRequest{Name: "Central", Location: "Bogotá", UserID: "u1"}
	assert.Empty(t, ok.Validate())

	vacio := dto.CreateWarehouseRequest{}
	assert.Len(t, vacio.Validate(), 3)
}

func TestUpdateWarehouseRequestValidate(t *testing.T) {
	ok := dto.UpdateWarehouseRequest{Name: "Central", Location: "Bogotá"}
	assert.Empty(t, ok.Validate())

	sinLocation := dto.UpdateWarehouseRequest{Name: "Central"}
	assert.Len(t, sinLocation.Validate(), 1)
}

func TestCreateProductRequestValidate(t *testing.T) {
	base := dto.CreateProductRequest{
		Name:        "Tornillos",
		Description: "Caja x100",
		Price:       decimal.NewFromInt(10),
		Stock:       1,
		WarehouseID: "w1",
		UserID:      "u1",
	}
	assert.Empty(t, base.Validate())

	// El stock inicial mínimo es 1; el precio mínimo también.
	sinStock := base
	sinStock.Stock = 0
	assert.Len(t, sinStock.Validate(), 1)

	precioBajo := base
	precioBajo.Price = decimal.NewFromFloat(0.99)
	assert.Len(t, precioBajo.Validate(), 1)
}

func TestUpdateProductStockRequestValidate(t *testing.T) {
	cero := 0
	negativo := -1

	// Cero es válido en la actualización (a diferencia del stock inicial).
	assert.Empty(t, dto.UpdateProductStockRequest{Stock: &cero}.Validate())
	assert.Len(t, dto.UpdateProductStockRequest{Stock: &negativo}.Validate(), 1)
	assert.Len(t, dto.UpdateProductStockRequest{}.Validate(), 1)
}
