package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// ProductUseCase aplica las reglas transaccionales sobre productos:
// creación atómica junto con su stock inicial, sobrescritura de stock por
// bodega y el bloqueo de borrado mientras quede stock > 0 en alguna bodega.
type ProductUseCase struct {
	txRunner TxRunner
	repo     repository.ProductRepository // lecturas fuera de transacción
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner TxRunner, repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, repo: repo}
}

// Create crea el producto y su fila de stock en la bodega indicada como
// una sola unidad atómica. Verifica primero la bodega y luego el usuario;
// el orden determina qué error ve el cliente si fallan ambos.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.IDResponse, error) {
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CreatedBy:   in.UserID,
		Status:      entity.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.txRunner.Run(ctx, func(
		users repository.UserRepository,
		warehouses repository.WarehouseRepository,
		products repository.ProductRepository,
		stocks repository.WarehouseStockRepository,
	) error {
		warehouse, err := warehouses.GetByID(in.WarehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrWarehouseNotFound
		}
		user, err := users.GetByID(in.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		if err := products.Create(product); err != nil {
			return err
		}
		return stocks.Create(&entity.WarehouseStock{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			WarehouseID: in.WarehouseID,
			Stock:       in.Stock,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}
	return &dto.IDResponse{ID: product.ID}, nil
}

// List devuelve todos los productos activos. Puede ser vacío.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update sobrescribe nombre, descripción y precio del producto.
func (uc *ProductUseCase) Update(ctx context.Context, productID string, in dto.UpdateProductRequest) (*dto.IDResponse, error) {
	err := uc.txRunner.Run(ctx, func(
		_ repository.UserRepository,
		_ repository.WarehouseRepository,
		products repository.ProductRepository,
		_ repository.WarehouseStockRepository,
	) error {
		product, err := products.GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		product.Name = in.Name
		product.Description = in.Description
		product.Price = in.Price
		product.UpdatedAt = time.Now()
		return products.Update(product)
	})
	if err != nil {
		return nil, err
	}
	return &dto.IDResponse{ID: productID}, nil
}

// UpdateStock sobrescribe la cantidad del par (producto, bodega). Verifica
// bodega, luego producto, luego la asociación; ese orden determina el error
// cuando falla más de una condición.
func (uc *ProductUseCase) UpdateStock(ctx context.Context, productID, warehouseID string, stock int) (*dto.IDResponse, error) {
	err := uc.txRunner.Run(ctx, func(
		_ repository.UserRepository,
		warehouses repository.WarehouseRepository,
		products repository.ProductRepository,
		stocks repository.WarehouseStockRepository,
	) error {
		warehouse, err := warehouses.GetByID(warehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrWarehouseNotFound
		}
		product, err := products.GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		relation, err := stocks.Get(productID, warehouseID)
		if err != nil {
			return err
		}
		if relation == nil {
			return domain.ErrStockNotFound
		}
		return stocks.UpdateStock(productID, warehouseID, stock)
	})
	if err != nil {
		return nil, err
	}
	return &dto.IDResponse{ID: productID}, nil
}

// Delete borra lógicamente el producto. Falla si cualquiera de sus filas
// de stock tiene cantidad > 0; si no, elimina físicamente esas filas y
// marca el producto como borrado, todo en una transacción.
func (uc *ProductUseCase) Delete(ctx context.Context, productID string) (*dto.IDResponse, error) {
	err := uc.txRunner.Run(ctx, func(
		_ repository.UserRepository,
		_ repository.WarehouseRepository,
		products repository.ProductRepository,
		stocks repository.WarehouseStockRepository,
	) error {
		product, err := products.GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		rows, err := stocks.ListByProduct(productID)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if row.Stock > 0 {
				return domain.ErrProductHasStock
			}
		}
		if err := stocks.DeleteByProduct(productID); err != nil {
			return err
		}
		return products.SoftDelete(productID)
	})
	if err != nil {
		return nil, err
	}
	return &dto.IDResponse{ID: productID}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
