package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-tiendas-api/internal/application/auth"
	"github.com/jhoicas/stock-tiendas-api/internal/application/inventory"
	"github.com/jhoicas/stock-tiendas-api/internal/application/usecase"
	"github.com/jhoicas/stock-tiendas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	StockUC    *inventory.StockUseCase
	QueryUC    *inventory.StockQueryUseCase
	LowStockUC *inventory.LowStockUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido; crear/actualizar solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", RequireRole(entity.RoleAdmin), productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", RequireRole(entity.RoleAdmin), productHandler.Update)

	// Inventario por tienda y movimientos (protegido)
	inventoryHandler := NewInventoryHandler(deps.StockUC, deps.QueryUC, deps.LowStockUC)

	stores := protected.Group("/stores")
	stores.Get("/:id/inventory", inventoryHandler.GetStoreInventory)
	stores.Post("/inventory", inventoryHandler.CreateInventory)

	invGroup := protected.Group("/inventory")
	invGroup.Post("/transfer", inventoryHandler.Transfer)
	invGroup.Get("/low-stock", inventoryHandler.GetLowStock)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
}
