package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"product-admin/internal/models"
)

type memoryEntry struct {
	product models.Product
	seq     uint64
}

// MemoryStore is an in-process ProductStore with the same observable
// semantics as ProductRepository. Used by tests and local tooling.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[primitive.ObjectID]*memoryEntry
	seq   uint64
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[primitive.ObjectID]*memoryEntry),
		now:   time.Now,
	}
}

// Len reports the number of stored products.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

func (m *MemoryStore) ListAll(_ context.Context) ([]models.Product, error) {
	m.mu.RLock()
	entries := make([]*memoryEntry, 0, len(m.items))
	for _, e := range m.items {
		entries = append(entries, e)
	}
	m.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.product.CreatedAt.Equal(b.product.CreatedAt) {
			return a.product.CreatedAt.After(b.product.CreatedAt)
		}
		return a.seq > b.seq
	})

	out := make([]models.Product, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.product)
	}
	return out, nil
}

func (m *MemoryStore) GetByID(_ context.Context, id string) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.items[objID]
	if !ok {
		return nil, ErrNotFound
	}
	p := e.product
	return &p, nil
}

func (m *MemoryStore) Insert(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p.ID = primitive.NewObjectID()
	p.CreatedAt = m.now().UTC().Truncate(time.Millisecond)
	m.seq++
	m.items[p.ID] = &memoryEntry{product: *p, seq: m.seq}
	return nil
}

func (m *MemoryStore) UpdateByID(_ context.Context, id string, u models.ProductUpdate) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.items[objID]
	if !ok {
		return nil, ErrNotFound
	}
	u.Apply(&e.product)
	p := e.product
	return &p, nil
}

func (m *MemoryStore) DeleteByID(_ context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[objID]; !ok {
		return ErrNotFound
	}
	delete(m.items, objID)
	return nil
}
