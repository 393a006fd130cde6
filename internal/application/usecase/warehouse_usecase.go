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

// WarehouseUseCase aplica las reglas transaccionales sobre bodegas:
// creador existente, nombre único entre bodegas activas y el bloqueo de
// borrado mientras haya productos asociados (con cualquier cantidad).
type WarehouseUseCase struct {
	txRunner TxRunner
	repo     repository.WarehouseRepository // lecturas fuera de transacción
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(txRunner TxRunner, repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{txRunner: txRunner, repo: repo}
}

// Create crea una bodega. Verifica dentro de la transacción que el usuario
// creador exista y que no haya otra bodega activa con el mismo nombre.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.IDResponse, error) {
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Location:  in.Location,
		CreatedBy: in.UserID,
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := uc.txRunner.Run(ctx, func(
		users repository.UserRepository,
		warehouses repository.WarehouseRepository,
		_ repository.ProductRepository,
		_ repository.WarehouseStockRepository,
	) error {
		user, err := users.GetByID(in.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		sameName, err := warehouses.GetByName(in.Name)
		if err != nil {
			return err
		}
		if sameName != nil {
			return domain.ErrWarehouseNameTaken
		}
		return warehouses.Create(warehouse)
	})
	if err != nil {
		return nil, err
	}
	return &dto.IDResponse{ID: warehouse.ID}, nil
}

// List devuelve todas las bodegas activas. Puede ser vacío.
func (uc *WarehouseUseCase) List() ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return items, nil
}

// ListProducts devuelve los productos alcanzables desde la bodega a través
// de sus filas de stock. Corre en transacción para leer un snapshot
// consistente; los productos con referencia colgante o borrados se omiten
// en silencio.
func (uc *WarehouseUseCase) ListProducts(ctx context.Context, warehouseID string) ([]dto.ProductResponse, error) {
	var items []dto.ProductResponse
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
		rows, err := stocks.ListByWarehouse(warehouseID)
		if err != nil {
			return err
		}
		items = make([]dto.ProductResponse, 0, len(rows))
		for _, row := range rows {
			product, err := products.GetByID(row.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				continue
			}
			items = append(items, *toProductResponse(product))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Update sobrescribe nombre y ubicación de la bodega. Revalida la unicidad
// del nombre contra las demás bodegas activas.
func (uc *WarehouseUseCase) Update(ctx context.Context, warehouseID string, in dto.UpdateWarehouseRequest) (*dto.IDResponse, error) {
	err := uc.txRunner.Run(ctx, func(
		_ repository.UserRepository,
		warehouses repository.WarehouseRepository,
		_ repository.ProductRepository,
		_ repository.WarehouseStockRepository,
	) error {
		warehouse, err := warehouses.GetByID(warehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrWarehouseNotFound
		}
		sameName, err := warehouses.GetByName(in.Name)
		if err != nil {
			return err
		}
		if sameName != nil && sameName.ID != warehouseID {
			return domain.ErrWarehouseNameTaken
		}
		warehouse.Name = in.Name
		warehouse.Location = in.Location
		warehouse.UpdatedAt = time.Now()
		return warehouses.Update(warehouse)
	})
	if err != nil {
		return nil, err
	}
	return &dto.IDResponse{ID: warehouseID}, nil
}

// Delete borra lógicamente la bodega. Falla si tiene cualquier asociación
// de stock, sin importar la cantidad; si no tiene, elimina físicamente sus
// filas de stock y marca la bodega como borrada, todo en una transacción.
func (uc *WarehouseUseCase) Delete(ctx context.Context, warehouseID string) (*dto.IDResponse, error) {
	err := uc.txRunner.Run(ctx, func(
		_ repository.UserRepository,
		warehouses repository.WarehouseRepository,
		_ repository.ProductRepository,
		stocks repository.WarehouseStockRepository,
	) error {
		warehouse, err := warehouses.GetByID(warehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrWarehouseNotFound
		}
		rows, err := stocks.ListByWarehouse(warehouseID)
		if err != nil {
			return err
		}
		if len(rows) > 0 {
			return domain.ErrWarehouseHasProducts
		}
		if err := stocks.DeleteByWarehouse(warehouseID); err != nil {
			return err
		}
		return warehouses.SoftDelete(warehouseID)
	})
	if err != nil {
		return nil, err
	}
	return &dto.IDResponse{ID: warehouseID}, nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		Location:  w.Location,
		CreatedBy: w.CreatedBy,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
