package usecase

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta un callback dentro de una unidad de trabajo atómica:
// todas las lecturas y escrituras hechas con los repos recibidos se
// confirman juntas (Commit) o se descartan juntas (Rollback). Si fn
// devuelve error, nada de lo escrito queda visible.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		warehouses repository.WarehouseRepository,
		products repository.ProductRepository,
		stocks repository.WarehouseStockRepository,
	) error) error
}
