package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-tiendas-api/internal/application/dto"
	"github.com/jhoicas/stock-tiendas-api/internal/application/inventory"
	"github.com/jhoicas/stock-tiendas-api/internal/domain"
	"github.com/jhoicas/stock-tiendas-api/internal/domain/entity"
	"github.com/jhoicas/stock-tiendas-api/internal/domain/repository"
)

// InventoryHandler maneja las peticiones HTTP de inventario por tienda:
// primer abastecimiento, traslados, listados y alertas de stock bajo (protegido).
type InventoryHandler struct {
	stock    *inventory.StockUseCase
	query    *inventory.StockQueryUseCase
	lowStock *inventory.LowStockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	stock *inventory.StockUseCase,
	query *inventory.StockQueryUseCase,
	lowStock *inventory.LowStockUseCase,
) *InventoryHandler {
	return &InventoryHandler{stock: stock, query: query, lowStock: lowStock}
}

// GetStoreInventory godoc
// @Summary      Inventario de una tienda
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la tienda"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/inventory [get]
func (h *InventoryHandler) GetStoreInventory(c *fiber.Ctx) error {
	storeID := c.Params("id")
	items, err := h.query.GetStoreInventory(storeID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el id de la tienda es obligatorio"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no se encontró inventario para la tienda indicada"})
		}
		return internalError(c, err, "inventario de tienda")
	}
	return c.JSON(fiber.Map{
		"store_id":  storeID,
		"total":     len(items),
		"inventory": toInventoryItemResponses(items),
	})
}

// CreateInventory godoc
// @Summary      Primer abastecimiento de un producto en una tienda
// @Description  Crea la fila de inventario (producto, tienda) con la cantidad y el
//
//	mínimo indicados y registra un movimiento IN en la misma transacción.
//	No es un restock: si la fila ya existe responde 409.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "product_id, store_id, quantity, min_stock"
// @Success      201   {object}  dto.CreateInventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stores/inventory [post]
func (h *InventoryHandler) CreateInventory(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	record, movement, err := h.stock.CreateInflow(c.Context(), inventory.InflowInput{
		ProductID: in.ProductID,
		StoreID:   in.StoreID,
		Quantity:  in.Quantity,
		MinStock:  in.MinStock,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos: cantidad debe ser positiva y min_stock no negativo"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no se encontró el producto indicado"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe inventario para el producto en la tienda indicada"})
		}
		return internalError(c, err, "crear inventario")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateInventoryResponse{
		Inventory: toInventoryRecordResponse(record),
		Movement:  toMovementResponse(movement),
	})
}

// Transfer godoc
// @Summary      Trasladar stock entre tiendas
// @Description  Debita la tienda origen, acredita la destino (creándola con
//
//	cantidad 0 si no existe) y registra un único movimiento TRANSFER,
//	todo en una sola transacción.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "product_id, source_store_id, target_store_id, quantity"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfer [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movement, product, err := h.stock.Transfer(c.Context(), inventory.TransferInput{
		ProductID:     in.ProductID,
		SourceStoreID: in.SourceStoreID,
		TargetStoreID: in.TargetStoreID,
		Quantity:      in.Quantity,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos: cantidad positiva y tiendas origen/destino distintas"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o inventario de origen no encontrado"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			// El mensaje lleva la cantidad solicitada y la disponible.
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
		}
		return internalError(c, err, "traslado de stock")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TransferResponse{
		Movement: toMovementResponse(movement),
		Product: dto.ProductResponse{
			ID:          product.ID,
			SKU:         product.SKU,
			Name:        product.Name,
			Description: product.Description,
			Category:    product.Category,
			Price:       product.Price,
			CreatedAt:   product.CreatedAt,
			UpdatedAt:   product.UpdatedAt,
		},
	})
}

// GetLowStock godoc
// @Summary      Productos con stock bajo
// @Description  Filas de inventario cuya cantidad está por debajo de su mínimo
//
//	configurado, opcionalmente filtradas por tienda.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        store_id  query  string  false  "Filtrar por tienda"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) GetLowStock(c *fiber.Ctx) error {
	storeID := c.Query("store_id")
	items, err := h.lowStock.List(storeID)
	if err != nil {
		return internalError(c, err, "stock bajo")
	}
	if len(items) == 0 {
		msg := "no se encontraron productos con stock bajo"
		if storeID != "" {
			msg = "no se encontraron productos con stock bajo en la tienda indicada"
		}
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msg})
	}
	return c.JSON(fiber.Map{
		"total":     len(items),
		"low_stock": toInventoryItemResponses(items),
	})
}

// ListMovements godoc
// @Summary      Historial de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        store_id    query  string  false  "Filtrar por tienda (origen o destino)"
// @Param        type        query  string  false  "IN | OUT | TRANSFER"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()
	movements, err := h.query.ListMovements(repository.MovementFilter{
		ProductID: c.Query("product_id"),
		StoreID:   c.Query("store_id"),
		Type:      c.Query("type"),
		Limit:     page.Limit,
		Offset:    page.Offset,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo de movimiento inválido"})
		}
		return internalError(c, err, "historial de movimientos")
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	return c.JSON(fiber.Map{"total": len(out), "movements": out})
}

func toInventoryRecordResponse(r *entity.InventoryRecord) dto.InventoryRecordResponse {
	return dto.InventoryRecordResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		StoreID:   r.StoreID,
		Quantity:  r.Quantity,
		MinStock:  r.MinStock,
	}
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		SourceStoreID: m.SourceStoreID,
		TargetStoreID: m.TargetStoreID,
		Quantity:      m.Quantity,
		Timestamp:     m.Timestamp,
		Type:          m.Type,
	}
}

func toInventoryItemResponses(items []repository.InventoryItem) []dto.InventoryItemResponse {
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.InventoryItemResponse{
			ID:       it.InventoryID,
			StoreID:  it.StoreID,
			Quantity: it.Quantity,
			MinStock: it.MinStock,
			Product: dto.InventoryProductDTO{
				ID:       it.ProductID,
				SKU:      it.SKU,
				Name:     it.ProductName,
				Category: it.Category,
				Price:    it.Price,
			},
		})
	}
	return out
}
