package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo (SKU único). No tiene campo de
// cantidad: el stock vive por tienda en InventoryRecord y solo cambia vía movimientos.
type Product struct {
	ID          string
	SKU         string
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
