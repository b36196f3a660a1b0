package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-tiendas-api/internal/domain/entity"
)

// InventoryItem fila de inventario enriquecida con los datos del producto
// (resultado crudo del join para listados por tienda y alertas de stock bajo).
type InventoryItem struct {
	InventoryID string
	StoreID     string
	Quantity    int64
	MinStock    int64
	ProductID   string
	SKU         string
	ProductName string
	Category    string
	Price       decimal.Decimal
}

// InventoryRepository define el puerto para las filas producto+tienda.
// Create y UpdateQuantity se usan solo dentro de transacciones (ver TxRunner)
// para que los invariantes del motor de stock no puedan saltarse.
type InventoryRepository interface {
	Get(productID, storeID string) (*entity.InventoryRecord, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usar dentro de una tx.
	GetForUpdate(productID, storeID string) (*entity.InventoryRecord, error)
	Create(record *entity.InventoryRecord) error
	UpdateQuantity(record *entity.InventoryRecord) error

	ListByStore(storeID string) ([]InventoryItem, error)
	// ListLowStock devuelve las filas con quantity < min_stock, opcionalmente
	// filtradas por tienda, ordenadas por mayor déficit primero.
	ListLowStock(storeID string) ([]InventoryItem, error)
}
