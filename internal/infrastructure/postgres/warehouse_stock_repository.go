package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.WarehouseStockRepository = (*WarehouseStockRepo)(nil)

// WarehouseStockRepo implementación de WarehouseStockRepository sobre
// PostgreSQL (usable con pool o tx). La tabla warehouses_products no tiene
// borrado lógico: aquí los DELETE son físicos.
type WarehouseStockRepo struct {
	q Querier
}

// NewWarehouseStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewWarehouseStockRepository(q Querier) *WarehouseStockRepo {
	return &WarehouseStockRepo{q: q}
}

// Create persiste una nueva asociación producto↔bodega. El constraint
// único sobre (product_id, warehouse_id) es la fuente de verdad ante
// inserciones concurrentes del mismo par.
func (r *WarehouseStockRepo) Create(stock *entity.WarehouseStock) error {
	query := `
		INSERT INTO warehouses_products (id, product_id, warehouse_id, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.ProductID, stock.WarehouseID, stock.Stock,
		stock.CreatedAt, stock.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert warehouse stock: %w", err)
	}
	return nil
}

// Get obtiene la asociación del par (producto, bodega), o nil si no existe.
func (r *WarehouseStockRepo) Get(productID, warehouseID string) (*entity.WarehouseStock, error) {
	query := `
		SELECT id, product_id, warehouse_id, stock, created_at, updated_at
		FROM warehouses_products WHERE product_id = $1 AND warehouse_id = $2`
	var s entity.WarehouseStock
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&s.ID, &s.ProductID, &s.WarehouseID, &s.Stock, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse stock: %w", err)
	}
	return &s, nil
}

// UpdateStock sobrescribe la cantidad del par (producto, bodega).
func (r *WarehouseStockRepo) UpdateStock(productID, warehouseID string, stock int) error {
	query := `
		UPDATE warehouses_products SET stock = $3, updated_at = $4
		WHERE product_id = $1 AND warehouse_id = $2`
	_, err := r.q.Exec(context.Background(), query, productID, warehouseID, stock, time.Now())
	if err != nil {
		return fmt.Errorf("update warehouse stock: %w", err)
	}
	return nil
}

// ListByWarehouse lista las asociaciones de una bodega.
func (r *WarehouseStockRepo) ListByWarehouse(warehouseID string) ([]*entity.WarehouseStock, error) {
	query := `
		SELECT id, product_id, warehouse_id, stock, created_at, updated_at
		FROM warehouses_products WHERE warehouse_id = $1`
	return r.list(query, warehouseID, "list stock by warehouse")
}

// ListByProduct lista las asociaciones de un producto.
func (r *WarehouseStockRepo) ListByProduct(productID string) ([]*entity.WarehouseStock, error) {
	query := `
		SELECT id, product_id, warehouse_id, stock, created_at, updated_at
		FROM warehouses_products WHERE product_id = $1`
	return r.list(query, productID, "list stock by product")
}

// DeleteByProduct elimina físicamente todas las asociaciones del producto.
func (r *WarehouseStockRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM warehouses_products WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete stock by product: %w", err)
	}
	return nil
}

// DeleteByWarehouse elimina físicamente todas las asociaciones de la bodega.
func (r *WarehouseStockRepo) DeleteByWarehouse(warehouseID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM warehouses_products WHERE warehouse_id = $1`, warehouseID)
	if err != nil {
		return fmt.Errorf("delete stock by warehouse: %w", err)
	}
	return nil
}

func (r *WarehouseStockRepo) list(query, arg, op string) ([]*entity.WarehouseStock, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.WarehouseStock
	for rows.Next() {
		var s entity.WarehouseStock
		if err := rows.Scan(&s.ID, &s.ProductID, &s.WarehouseID, &s.Stock, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
