package entity

import (
	"time"

	"github.com/jhoicas/stock-tiendas-api/internal/domain"
)

// InventoryRecord representa el stock actual de un producto en una tienda.
// Existe una sola fila por (ProductID, StoreID); la cantidad nunca es negativa
// y solo la muta el motor de stock dentro de una transacción.
type InventoryRecord struct {
	ID        string
	ProductID string
	StoreID   string
	Quantity  int64
	MinStock  int64
	UpdatedAt time.Time
}

// Adjust aplica un delta (positivo o negativo) a la cantidad y devuelve la nueva.
// Rechaza con ErrInvalidInput cualquier ajuste que deje la cantidad negativa,
// sin modificar el registro. La persistencia es responsabilidad del caller.
func (r *InventoryRecord) Adjust(delta int64) (int64, error) {
	next := r.Quantity + delta
	if next < 0 {
		return r.Quantity, domain.ErrInvalidInput
	}
	r.Quantity = next
	return next, nil
}

// IsLowStock indica si la fila está por debajo de su mínimo configurado.
func (r *InventoryRecord) IsLowStock() bool {
	return r.Quantity < r.MinStock
}
