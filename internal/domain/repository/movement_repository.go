package repository

import "github.com/jhoicas/stock-tiendas-api/internal/domain/entity"

// MovementFilter filtros para el historial de movimientos. StoreID coincide
// contra tienda origen o destino.
type MovementFilter struct {
	ProductID string
	StoreID   string
	Type      string
	Limit     int
	Offset    int
}

// MovementRepository define el puerto para la bitácora de movimientos.
// Es append-only: no hay Update ni Delete. Create debe invocarse en la misma
// transacción que la mutación de inventario que documenta.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	List(filter MovementFilter) ([]*entity.Movement, error)
}
