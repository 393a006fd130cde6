// Package testutil provee una implementación en memoria de los puertos de
// persistencia y del TxRunner, para probar el núcleo de reglas sin base de
// datos. El Run toma un snapshot del estado y lo restaura si el callback
// devuelve error, emulando el Rollback transaccional.
package testutil

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*MemStore)(nil)

// MemStore estado en memoria compartido por los repos fake.
type MemStore struct {
	Users      map[string]entity.User
	Warehouses map[string]entity.Warehouse
	Products   map[string]entity.Product
	Stocks     map[string]entity.WarehouseStock
}

// NewMemStore construye un store vacío.
func NewMemStore() *MemStore {
	return &MemStore{
		Users:      make(map[string]entity.User),
		Warehouses: make(map[string]entity.Warehouse),
		Products:   make(map[string]entity.Product),
		Stocks:     make(map[string]entity.WarehouseStock),
	}
}

// Run emula la unidad de trabajo: si fn falla, restaura el snapshot previo
// para que ninguna escritura parcial quede visible.
func (s *MemStore) Run(_ context.Context, fn func(
	users repository.UserRepository,
	warehouses repository.WarehouseRepository,
	products repository.ProductRepository,
	stocks repository.WarehouseStockRepository,
) error) error {
	snap := s.snapshot()
	if err := fn(s.UserRepo(), s.WarehouseRepo(), s.ProductRepo(), s.StockRepo()); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// UserRepo devuelve el repo fake de usuarios.
func (s *MemStore) UserRepo() repository.UserRepository { return &memUserRepo{s: s} }

// WarehouseRepo devuelve el repo fake de bodegas.
func (s *MemStore) WarehouseRepo() repository.WarehouseRepository { return &memWarehouseRepo{s: s} }

// ProductRepo devuelve el repo fake de productos.
func (s *MemStore) ProductRepo() repository.ProductRepository { return &memProductRepo{s: s} }

// StockRepo devuelve el repo fake de asociaciones de stock.
func (s *MemStore) StockRepo() repository.WarehouseStockRepository { return &memStockRepo{s: s} }

func (s *MemStore) snapshot() *MemStore {
	snap := NewMemStore()
	for k, v := range s.Users {
		snap.Users[k] = v
	}
	for k, v := range s.Warehouses {
		snap.Warehouses[k] = v
	}
	for k, v := range s.Products {
		snap.Products[k] = v
	}
	for k, v := range s.Stocks {
		snap.Stocks[k] = v
	}
	return snap
}

func (s *MemStore) restore(snap *MemStore) {
	s.Users = snap.Users
	s.Warehouses = snap.Warehouses
	s.Products = snap.Products
	s.Stocks = snap.Stocks
}

type memUserRepo struct{ s *MemStore }

func (r *memUserRepo) Create(user *entity.User) error {
	r.s.Users[user.ID] = *user
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.s.Users[id]
	if !ok || u.Status != entity.StatusActive {
		return nil, nil
	}
	return &u, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.s.Users {
		if u.Email == email && u.Status == entity.StatusActive {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByUserName(userName string) (*entity.User, error) {
	for _, u := range r.s.Users {
		if u.UserName == userName && u.Status == entity.StatusActive {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

type memWarehouseRepo struct{ s *MemStore }

func (r *memWarehouseRepo) Create(warehouse *entity.Warehouse) error {
	r.s.Warehouses[warehouse.ID] = *warehouse
	return nil
}

func (r *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.s.Warehouses[id]
	if !ok || w.Status != entity.StatusActive {
		return nil, nil
	}
	return &w, nil
}

func (r *memWarehouseRepo) GetByName(name string) (*entity.Warehouse, error) {
	for _, w := range r.s.Warehouses {
		if w.Name == name && w.Status == entity.StatusActive {
			w := w
			return &w, nil
		}
	}
	return nil, nil
}

func (r *memWarehouseRepo) Update(warehouse *entity.Warehouse) error {
	r.s.Warehouses[warehouse.ID] = *warehouse
	return nil
}

func (r *memWarehouseRepo) List() ([]*entity.Warehouse, error) {
	var list []*entity.Warehouse
	for _, w := range r.s.Warehouses {
		if w.Status == entity.StatusActive {
			w := w
			list = append(list, &w)
		}
	}
	return list, nil
}

func (r *memWarehouseRepo) SoftDelete(id string) error {
	w, ok := r.s.Warehouses[id]
	if ok {
		w.Status = entity.StatusDeleted
		r.s.Warehouses[id] = w
	}
	return nil
}

type memProductRepo struct{ s *MemStore }

func (r *memProductRepo) Create(product *entity.Product) error {
	r.s.Products[product.ID] = *product
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.Products[id]
	if !ok || p.Status != entity.StatusActive {
		return nil, nil
	}
	return &p, nil
}

func (r *memProductRepo) Update(product *entity.Product) error {
	r.s.Products[product.ID] = *product
	return nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.s.Products {
		if p.Status == entity.StatusActive {
			p := p
			list = append(list, &p)
		}
	}
	return list, nil
}

func (r *memProductRepo) SoftDelete(id string) error {
	p, ok := r.s.Products[id]
	if ok {
		p.Status = entity.StatusDeleted
		r.s.Products[id] = p
	}
	return nil
}

type memStockRepo struct{ s *MemStore }

func (r *memStockRepo) Create(stock *entity.WarehouseStock) error {
	// Emula el constraint único sobre (product_id, warehouse_id).
	for _, st := range r.s.Stocks {
		if st.ProductID == stock.ProductID && st.WarehouseID == stock.WarehouseID {
			return domain.ErrDuplicate
		}
	}
	r.s.Stocks[stock.ID] = *stock
	return nil
}

func (r *memStockRepo) Get(productID, warehouseID string) (*entity.WarehouseStock, error) {
	for _, st := range r.s.Stocks {
		if st.ProductID == productID && st.WarehouseID == warehouseID {
			st := st
			return &st, nil
		}
	}
	return nil, nil
}

func (r *memStockRepo) UpdateStock(productID, warehouseID string, stock int) error {
	for id, st := range r.s.Stocks {
		if st.ProductID == productID && st.WarehouseID == warehouseID {
			st.Stock = stock
			r.s.Stocks[id] = st
		}
	}
	return nil
}

func (r *memStockRepo) ListByWarehouse(warehouseID string) ([]*entity.WarehouseStock, error) {
	var list []*entity.WarehouseStock
	for _, st := range r.s.Stocks {
		if st.WarehouseID == warehouseID {
			st := st
			list = append(list, &st)
		}
	}
	return list, nil
}

func (r *memStockRepo) ListByProduct(productID string) ([]*entity.WarehouseStock, error) {
	var list []*entity.WarehouseStock
	for _, st := range r.s.Stocks {
		if st.ProductID == productID {
			st := st
			list = append(list, &st)
		}
	}
	return list, nil
}

func (r *memStockRepo) DeleteByProduct(productID string) error {
	for id, st := range r.s.Stocks {
		if st.ProductID == productID {
			delete(r.s.Stocks, id)
		}
	}
	return nil
}

func (r *memStockRepo) DeleteByWarehouse(warehouseID string) error {
	for id, st := range r.s.Stocks {
		if st.WarehouseID == warehouseID {
			delete(r.s.Stocks, id)
		}
	}
	return nil
}
