package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-tiendas-api/internal/domain"
	"github.com/jhoicas/stock-tiendas-api/internal/domain/entity"
	"github.com/jhoicas/stock-tiendas-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL
// (usable con pool o tx). La tabla inventories tiene constraint único sobre
// (product_id, store_id).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Get obtiene la fila de un producto en una tienda. Retorna nil si no existe.
func (r *InventoryRepo) Get(productID, storeID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT id, product_id, store_id, quantity, min_stock, updated_at
		FROM inventories WHERE product_id = $1 AND store_id = $2`
	var rec entity.InventoryRecord
	err := r.q.QueryRow(context.Background(), query, productID, storeID).Scan(
		&rec.ID, &rec.ProductID, &rec.StoreID, &rec.Quantity, &rec.MinStock, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &rec, nil
}

// GetForUpdate obtiene la fila y la bloquea para update (SELECT FOR UPDATE).
// Retorna nil si no existe. Usar solo dentro de una transacción.
func (r *InventoryRepo) GetForUpdate(productID, storeID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT id, product_id, store_id, quantity, min_stock, updated_at
		FROM inventories WHERE product_id = $1 AND store_id = $2
		FOR UPDATE`
	var rec entity.InventoryRecord
	err := r.q.QueryRow(context.Background(), query, productID, storeID).Scan(
		&rec.ID, &rec.ProductID, &rec.StoreID, &rec.Quantity, &rec.MinStock, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return &rec, nil
}

// Create inserta una fila de inventario nueva. Retorna ErrDuplicate si ya
// existe una para el mismo (product_id, store_id).
func (r *InventoryRepo) Create(record *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventories (id, product_id, store_id, quantity, min_stock, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.ProductID, record.StoreID, record.Quantity, record.MinStock, record.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// UpdateQuantity persiste la cantidad (y updated_at) de una fila existente.
// min_stock no se toca desde aquí.
func (r *InventoryRepo) UpdateQuantity(record *entity.InventoryRecord) error {
	query := `
		UPDATE inventories SET quantity = $2, updated_at = $3
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, record.ID, record.Quantity, record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const inventoryItemColumns = `
	i.id, i.store_id, i.quantity, i.min_stock,
	p.id, p.sku, p.name, p.category, p.price`

func scanInventoryItems(rows pgx.Rows) ([]repository.InventoryItem, error) {
	defer rows.Close()
	var items []repository.InventoryItem
	for rows.Next() {
		var it repository.InventoryItem
		if err := rows.Scan(
			&it.InventoryID, &it.StoreID, &it.Quantity, &it.MinStock,
			&it.ProductID, &it.SKU, &it.ProductName, &it.Category, &it.Price,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ListByStore lista el inventario de una tienda con los datos del producto,
// orden estable por id de fila.
func (r *InventoryRepo) ListByStore(storeID string) ([]repository.InventoryItem, error) {
	query := `
		SELECT ` + inventoryItemColumns + `
		FROM inventories i
		JOIN products p ON p.id = i.product_id
		WHERE i.store_id = $1
		ORDER BY i.id`
	rows, err := r.q.Query(context.Background(), query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list inventory by store: %w", err)
	}
	return scanInventoryItems(rows)
}

// ListLowStock lista las filas con quantity < min_stock, opcionalmente
// filtradas por tienda, ordenadas por mayor déficit primero (desempate por id
// para que lecturas repetidas devuelvan lo mismo).
func (r *InventoryRepo) ListLowStock(storeID string) ([]repository.InventoryItem, error) {
	query := `
		SELECT ` + inventoryItemColumns + `
		FROM inventories i
		JOIN products p ON p.id = i.product_id
		WHERE i.quantity < i.min_stock`
	args := []any{}
	if storeID != "" {
		query += ` AND i.store_id = $1`
		args = append(args, storeID)
	}
	query += ` ORDER BY (i.min_stock - i.quantity) DESC, i.id`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	return scanInventoryItems(rows)
}
