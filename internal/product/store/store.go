// Package store provides an interface for product storage operations.
package store

import (
	"context"

	"github.com/abgdnv/gocatalog/internal/platform/optional"
)

// Product represents a product entity in the store.
type Product struct {
	ID          int64
	Name        string
	Price       float64
	Description *string
}

// ProductPatch lists the fields of a partial update. Absent fields are left untouched;
// a null Description clears it.
type ProductPatch struct {
	Name        optional.Field[string]
	Price       optional.Field[float64]
	Description optional.Field[string]
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*Product, error)

	// Update merges the fields present in patch onto the product stored under id
	// and returns the merged product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id int64, patch ProductPatch) (*Product, error)
}

// apply merges patch onto p. The ID is never changed.
func (p Product) apply(patch ProductPatch) Product {
	if patch.Name.Present() {
		p.Name = patch.Name.Value
	}
	if patch.Price.Present() {
		p.Price = patch.Price.Value
	}
	if patch.Description.Set {
		p.Description = patch.Description.Ptr()
	}
	return p
}

// clone returns a copy of p that shares no memory with it.
func (p Product) clone() Product {
	if p.Description != nil {
		d := *p.Description
		p.Description = &d
	}
	return p
}
