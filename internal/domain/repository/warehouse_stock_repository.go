package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// WarehouseStockRepository define el puerto para la asociación
// producto↔bodega con su cantidad. Usado dentro de transacciones para
// garantizar consistencia; los borrados aquí son siempre físicos.
type WarehouseStockRepository interface {
	Create(stock *entity.WarehouseStock) error
	// Get devuelve la asociación del par (producto, bodega), o nil si no existe.
	Get(productID, warehouseID string) (*entity.WarehouseStock, error)
	UpdateStock(productID, warehouseID string, stock int) error
	ListByWarehouse(warehouseID string) ([]*entity.WarehouseStock, error)
	ListByProduct(productID string) ([]*entity.WarehouseStock, error)
	DeleteByProduct(productID string) error
	DeleteByWarehouse(warehouseID string) error
}
