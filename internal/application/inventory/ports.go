package inventory

import (
	"context"

	"github.com/jhoicas/stock-tiendas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Si fn retorna error, todo lo escrito se
// revierte; si retorna nil, se hace Commit. Es la garantía de atomicidad
// del motor de stock: ajustes de cantidad y registro en la bitácora
// comprometen o abortan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
	) error) error
}
