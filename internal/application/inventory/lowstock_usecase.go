package inventory

import (
	"github.com/jhoicas/stock-tiendas-api/internal/domain/repository"
)

// LowStockUseCase consulta de alertas de stock bajo: filas cuya cantidad está
// estrictamente por debajo de su mínimo configurado. Solo lectura; se calcula
// al momento de la consulta, así que siempre refleja el último estado
// confirmado.
type LowStockUseCase struct {
	invRepo repository.InventoryRepository
}

// NewLowStockUseCase construye el caso de uso.
func NewLowStockUseCase(invRepo repository.InventoryRepository) *LowStockUseCase {
	return &LowStockUseCase{invRepo: invRepo}
}

// List devuelve las filas con stock bajo, opcionalmente filtradas a una
// tienda (storeID vacío = todas). Un resultado vacío no es un error: es el
// boundary HTTP quien decide cómo reportarlo.
func (uc *LowStockUseCase) List(storeID string) ([]repository.InventoryItem, error) {
	return uc.invRepo.ListLowStock(storeID)
}
