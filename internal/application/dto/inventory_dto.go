package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryRequest body para POST /api/stores/inventory (primer
// abastecimiento de un producto en una tienda; no es un restock).
type CreateInventoryRequest struct {
	ProductID string `json:"product_id"`
	StoreID   string `json:"store_id"`
	Quantity  int64  `json:"quantity"`
	MinStock  int64  `json:"min_stock"`
}

// TransferRequest body para POST /api/inventory/transfer.
type TransferRequest struct {
	ProductID     string `json:"product_id"`
	SourceStoreID string `json:"source_store_id"`
	TargetStoreID string `json:"target_store_id"`
	Quantity      int64  `json:"quantity"`
}

// InventoryRecordResponse fila de inventario en respuestas.
type InventoryRecordResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	StoreID   string `json:"store_id"`
	Quantity  int64  `json:"quantity"`
	MinStock  int64  `json:"min_stock"`
}

// MovementResponse movimiento registrado en la bitácora.
type MovementResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	SourceStoreID string    `json:"source_store_id"`
	TargetStoreID string    `json:"target_store_id"`
	Quantity      int64     `json:"quantity"`
	Timestamp     time.Time `json:"timestamp"`
	Type          string    `json:"type"`
}

// InventoryItemResponse fila de inventario con los datos de su producto
// (listado por tienda y alertas de stock bajo).
type InventoryItemResponse struct {
	ID       string              `json:"id"`
	StoreID  string              `json:"store_id"`
	Quantity int64               `json:"quantity"`
	MinStock int64               `json:"min_stock"`
	Product  InventoryProductDTO `json:"product"`
}

// InventoryProductDTO datos de producto embebidos en listados de inventario.
type InventoryProductDTO struct {
	ID       string          `json:"id"`
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

// CreateInventoryResponse respuesta del primer abastecimiento.
type CreateInventoryResponse struct {
	Inventory InventoryRecordResponse `json:"inventory"`
	Movement  MovementResponse        `json:"movement"`
}

// TransferResponse respuesta de un traslado: el movimiento creado y el
// producto (sin cambios) para reporte.
type TransferResponse struct {
	Movement MovementResponse `json:"movement"`
	Product  ProductResponse  `json:"product"`
}
