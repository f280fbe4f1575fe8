package store

import (
	"context"
	"sync"

	"github.com/abgdnv/gocatalog/internal/product/errors"
)

// inMemory implements ProductStore using an in-memory map.
type inMemory struct {
	mu       sync.RWMutex
	products map[int64]Product
}

// NewInMemoryStore creates a new instance of ProductStore holding the given products.
// The set of ids is fixed from here on: the store has no insert or delete.
func NewInMemoryStore(seed ...Product) ProductStore {
	products := make(map[int64]Product, len(seed))
	for _, p := range seed {
		products[p.ID] = p.clone()
	}
	return &inMemory{
		products: products,
	}
}

// FindByID retrieves a product by its ID.
func (s *inMemory) FindByID(_ context.Context, id int64) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, errors.ErrProductNotFound
	}
	found := p.clone()
	return &found, nil
}

// Update merges patch onto the product stored under id.
func (s *inMemory) Update(_ context.Context, id int64, patch ProductPatch) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.products[id]
	if !ok {
		return nil, errors.ErrProductNotFound
	}
	merged := current.apply(patch)
	s.products[id] = merged
	updated := merged.clone()
	return &updated, nil
}
