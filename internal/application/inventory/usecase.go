package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-tiendas-api/internal/domain"
	"github.com/jhoicas/stock-tiendas-api/internal/domain/entity"
	"github.com/jhoicas/stock-tiendas-api/internal/domain/repository"
)

// Config política del motor de stock: cómo se siembra el min_stock cuando un
// traslado crea la fila de inventario en la tienda destino.
type Config struct {
	InheritMinStock bool  // true: hereda el min_stock de la fila origen
	DefaultMinStock int64 // usado cuando no se hereda
}

// StockUseCase motor de movimientos de stock: primer abastecimiento (IN) y
// traslados entre tiendas (TRANSFER). Toda mutación corre dentro de una sola
// transacción (TxRunner) con bloqueo de fila (SELECT FOR UPDATE) y deja
// exactamente un movimiento en la bitácora por operación confirmada.
//
// El orden de validación es fijo y determinista: forma de los campos
// (ErrInvalidInput, antes de abrir transacción), existencia del producto
// (ErrNotFound), reglas de negocio sobre cantidades (InsufficientStockError)
// y por último duplicidad (ErrDuplicate). Los chequeos posteriores dependen
// de filas que buscan los anteriores, así que el orden no puede alterarse.
type StockUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	invRepo     repository.InventoryRepository
	cfg         Config
}

// NewStockUseCase construye el motor de stock.
func NewStockUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
	cfg Config,
) *StockUseCase {
	return &StockUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		invRepo:     invRepo,
		cfg:         cfg,
	}
}

// InflowInput entrada para el primer abastecimiento de un producto en una tienda.
type InflowInput struct {
	ProductID string
	StoreID   string
	Quantity  int64
	MinStock  int64
}

// TransferInput entrada para un traslado de stock entre tiendas.
type TransferInput struct {
	ProductID     string
	SourceStoreID string
	TargetStoreID string
	Quantity      int64
}

// CreateInflow registra el primer abastecimiento de un producto en una tienda:
// crea la fila de inventario con la cantidad y el mínimo indicados y deja un
// movimiento IN (origen = destino = tienda) en la misma transacción.
// Falla con ErrDuplicate si la fila (producto, tienda) ya existe: esta
// operación no es un restock.
func (uc *StockUseCase) CreateInflow(ctx context.Context, in InflowInput) (*entity.InventoryRecord, *entity.Movement, error) {
	if in.ProductID == "" || in.StoreID == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 || in.MinStock < 0 {
		return nil, nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, domain.ErrNotFound
	}

	existing, err := uc.invRepo.Get(in.ProductID, in.StoreID)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, domain.ErrDuplicate
	}

	now := time.Now()
	record := &entity.InventoryRecord{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		StoreID:   in.StoreID,
		Quantity:  in.Quantity,
		MinStock:  in.MinStock,
		UpdatedAt: now,
	}
	movement := &entity.Movement{
		ID:            uuid.New().String(),
		ProductID:     in.ProductID,
		SourceStoreID: in.StoreID,
		TargetStoreID: in.StoreID,
		Quantity:      in.Quantity,
		Timestamp:     now,
		Type:          entity.MovementTypeIN,
	}

	// El constraint único (product_id, store_id) respalda el pre-chequeo ante
	// dos inflows concurrentes: el segundo Create retorna ErrDuplicate y la
	// transacción completa se revierte.
	err = uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
	) error {
		if err := invRepo.Create(record); err != nil {
			return err
		}
		return movRepo.Create(movement)
	})
	if err != nil {
		return nil, nil, err
	}
	return record, movement, nil
}

// Transfer mueve stock de una tienda a otra de forma atómica: bloquea la fila
// origen, verifica disponibilidad, crea la fila destino si no existe (cantidad
// 0, min_stock según Config), debita, acredita y registra un único movimiento
// TRANSFER. Los cuatro sub-pasos comprometen o abortan juntos; el total de
// stock del producto entre tiendas no cambia.
func (uc *StockUseCase) Transfer(ctx context.Context, in TransferInput) (*entity.Movement, *entity.Product, error) {
	if in.ProductID == "" || in.SourceStoreID == "" || in.TargetStoreID == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, nil, domain.ErrInvalidInput
	}
	if in.SourceStoreID == in.TargetStoreID {
		return nil, nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, domain.ErrNotFound
	}

	now := time.Now()
	movement := &entity.Movement{
		ID:            uuid.New().String(),
		ProductID:     in.ProductID,
		SourceStoreID: in.SourceStoreID,
		TargetStoreID: in.TargetStoreID,
		Quantity:      in.Quantity,
		Timestamp:     now,
		Type:          entity.MovementTypeTRANSFER,
	}

	err = uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
	) error {
		// Bloquea la fila origen para que dos traslados concurrentes no lean
		// la misma cantidad y gasten el stock dos veces.
		source, err := invRepo.GetForUpdate(in.ProductID, in.SourceStoreID)
		if err != nil {
			return err
		}
		if source == nil {
			return domain.ErrNotFound
		}
		if source.Quantity < in.Quantity {
			return &domain.InsufficientStockError{Requested: in.Quantity, Available: source.Quantity}
		}

		target, err := invRepo.GetForUpdate(in.ProductID, in.TargetStoreID)
		if err != nil {
			return err
		}
		if target == nil {
			// Primera llegada del producto a la tienda destino: fila en cero.
			target = &entity.InventoryRecord{
				ID:        uuid.New().String(),
				ProductID: in.ProductID,
				StoreID:   in.TargetStoreID,
				Quantity:  0,
				MinStock:  uc.targetMinStock(source),
				UpdatedAt: now,
			}
			if err := invRepo.Create(target); err != nil {
				return err
			}
		}

		if _, err := source.Adjust(-in.Quantity); err != nil {
			return err
		}
		if _, err := target.Adjust(in.Quantity); err != nil {
			return err
		}
		source.UpdatedAt = now
		target.UpdatedAt = now

		if err := invRepo.UpdateQuantity(source); err != nil {
			return err
		}
		if err := invRepo.UpdateQuantity(target); err != nil {
			return err
		}
		return movRepo.Create(movement)
	})
	if err != nil {
		return nil, nil, err
	}
	return movement, product, nil
}

// targetMinStock resuelve el min_stock de la fila destino recién creada según
// la política configurada.
func (uc *StockUseCase) targetMinStock(source *entity.InventoryRecord) int64 {
	if uc.cfg.InheritMinStock {
		return source.MinStock
	}
	return uc.cfg.DefaultMinStock
}
