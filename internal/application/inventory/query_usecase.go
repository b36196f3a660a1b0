package inventory

import (
	"github.com/jhoicas/stock-tiendas-api/internal/domain"
	"github.com/jhoicas/stock-tiendas-api/internal/domain/entity"
	"github.com/jhoicas/stock-tiendas-api/internal/domain/repository"
)

// StockQueryUseCase lecturas de inventario y bitácora (sin camino de escritura).
type StockQueryUseCase struct {
	invRepo repository.InventoryRepository
	movRepo repository.MovementRepository
}

// NewStockQueryUseCase construye el caso de uso de consultas.
func NewStockQueryUseCase(invRepo repository.InventoryRepository, movRepo repository.MovementRepository) *StockQueryUseCase {
	return &StockQueryUseCase{invRepo: invRepo, movRepo: movRepo}
}

// GetStoreInventory devuelve el inventario de una tienda con los datos de
// producto. Falla con ErrNotFound si la tienda no tiene ninguna fila.
func (uc *StockQueryUseCase) GetStoreInventory(storeID string) ([]repository.InventoryItem, error) {
	if storeID == "" {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.invRepo.ListByStore(storeID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrNotFound
	}
	return items, nil
}

// ListMovements devuelve el historial de movimientos filtrado por producto,
// tienda y/o tipo, más reciente primero.
func (uc *StockQueryUseCase) ListMovements(filter repository.MovementFilter) ([]*entity.Movement, error) {
	if filter.Type != "" && !entity.ValidMovementType(filter.Type) {
		return nil, domain.ErrInvalidInput
	}
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return uc.movRepo.List(filter)
}
