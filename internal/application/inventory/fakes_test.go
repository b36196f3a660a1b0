package inventory_test

import (
	"context"
	"sort"

	"github.com/jhoicas/stock-tiendas-api/internal/domain/entity"
	"github.com/jhoicas/stock-tiendas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos del motor de stock.
//
// fakeTxRunner simula la atomicidad de la BD por snapshot: clona el estado
// antes de ejecutar fn y lo restaura si fn falla, de modo que los tests de
// rollback observan exactamente lo que observaría un caller con PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

func invKey(productID, storeID string) string { return productID + "|" + storeID }

type fakeStore struct {
	products  map[string]*entity.Product
	records   map[string]*entity.InventoryRecord
	movements []*entity.Movement
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: map[string]*entity.Product{},
		records:  map[string]*entity.InventoryRecord{},
	}
}

func (s *fakeStore) addProduct(p entity.Product) {
	s.products[p.ID] = &p
}

func (s *fakeStore) addRecord(r entity.InventoryRecord) {
	s.records[invKey(r.ProductID, r.StoreID)] = &r
}

func (s *fakeStore) record(productID, storeID string) *entity.InventoryRecord {
	return s.records[invKey(productID, storeID)]
}

func (s *fakeStore) snapshot() *fakeStore {
	c := newFakeStore()
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for k, r := range s.records {
		cr := *r
		c.records[k] = &cr
	}
	c.movements = append([]*entity.Movement(nil), s.movements...)
	return c
}

func (s *fakeStore) restore(from *fakeStore) {
	s.products = from.products
	s.records = from.records
	s.movements = from.movements
}

// ---- ProductRepository ----

type fakeProductRepo struct{ s *fakeStore }

func (f *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	f.s.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range f.s.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	f.s.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.s.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ---- InventoryRepository ----

type fakeInventoryRepo struct {
	s          *fakeStore
	failCreate error
}

func (f *fakeInventoryRepo) Get(productID, storeID string) (*entity.InventoryRecord, error) {
	r := f.s.record(productID, storeID)
	if r == nil {
		return nil, nil
	}
	cr := *r
	return &cr, nil
}

func (f *fakeInventoryRepo) GetForUpdate(productID, storeID string) (*entity.InventoryRecord, error) {
	return f.Get(productID, storeID)
}

func (f *fakeInventoryRepo) Create(record *entity.InventoryRecord) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	cr := *record
	f.s.records[invKey(record.ProductID, record.StoreID)] = &cr
	return nil
}

func (f *fakeInventoryRepo) UpdateQuantity(record *entity.InventoryRecord) error {
	for k, r := range f.s.records {
		if r.ID == record.ID {
			cr := *record
			f.s.records[k] = &cr
			return nil
		}
	}
	return nil
}

func (f *fakeInventoryRepo) toItem(r *entity.InventoryRecord) repository.InventoryItem {
	it := repository.InventoryItem{
		InventoryID: r.ID,
		StoreID:     r.StoreID,
		Quantity:    r.Quantity,
		MinStock:    r.MinStock,
		ProductID:   r.ProductID,
	}
	if p, ok := f.s.products[r.ProductID]; ok {
		it.SKU = p.SKU
		it.ProductName = p.Name
		it.Category = p.Category
		it.Price = p.Price
	}
	return it
}

func (f *fakeInventoryRepo) ListByStore(storeID string) ([]repository.InventoryItem, error) {
	var items []repository.InventoryItem
	for _, r := range f.s.records {
		if r.StoreID == storeID {
			items = append(items, f.toItem(r))
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].InventoryID < items[j].InventoryID })
	return items, nil
}

func (f *fakeInventoryRepo) ListLowStock(storeID string) ([]repository.InventoryItem, error) {
	var items []repository.InventoryItem
	for _, r := range f.s.records {
		if storeID != "" && r.StoreID != storeID {
			continue
		}
		if r.Quantity < r.MinStock {
			items = append(items, f.toItem(r))
		}
	}
	// Mismo orden que el adaptador real: mayor déficit primero, desempate por id.
	sort.Slice(items, func(i, j int) bool {
		di := items[i].MinStock - items[i].Quantity
		dj := items[j].MinStock - items[j].Quantity
		if di != dj {
			return di > dj
		}
		return items[i].InventoryID < items[j].InventoryID
	})
	return items, nil
}

// ---- MovementRepository ----

type fakeMovementRepo struct {
	s          *fakeStore
	failCreate error
}

func (f *fakeMovementRepo) Create(m *entity.Movement) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	cm := *m
	f.s.movements = append(f.s.movements, &cm)
	return nil
}

func (f *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	for _, m := range f.s.movements {
		if m.ID == id {
			cm := *m
			return &cm, nil
		}
	}
	return nil, nil
}

func (f *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range f.s.movements {
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.StoreID != "" && m.SourceStoreID != filter.StoreID && m.TargetStoreID != filter.StoreID {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		cm := *m
		out = append(out, &cm)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

// ---- TxRunner ----

type fakeTxRunner struct {
	s *fakeStore
	// errores a inyectar en los repos atados a la "transacción"
	failInventoryCreate error
	failMovementCreate  error
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	movRepo repository.MovementRepository,
) error) error {
	snap := f.s.snapshot()
	err := fn(
		&fakeInventoryRepo{s: f.s, failCreate: f.failInventoryCreate},
		&fakeMovementRepo{s: f.s, failCreate: f.failMovementCreate},
	)
	if err != nil {
		f.s.restore(snap)
		return err
	}
	return nil
}
