// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	perrors "github.com/abgdnv/gocatalog/internal/product/errors"
	"github.com/abgdnv/gocatalog/internal/product/store"
)

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*ProductDto, error)

	// UpdateDetails applies the fields present in details to the product.
	// Returns ErrIDMismatch if details.ID is missing or differs from id, a *ValidationError
	// if a provided field breaks the product schema, and ErrProductNotFound if no product
	// exists with the given ID.
	UpdateDetails(ctx context.Context, id int64, details ProductDetailsDto) error
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
	validate   *validator.Validate
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
		validate:   NewValidator(),
	}
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
func (s *Service) FindByID(ctx context.Context, id int64) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}

	return toDto(product), nil
}

// UpdateDetails merges details onto the product with the given ID.
func (s *Service) UpdateDetails(ctx context.Context, id int64, details ProductDetailsDto) error {
	if !details.ID.Present() || details.ID.Value != id {
		return fmt.Errorf("update product with ID %d: %w", id, perrors.ErrIDMismatch)
	}
	if err := details.Validate(s.validate); err != nil {
		return fmt.Errorf("update product with ID %d: %w", id, err)
	}
	if _, err := s.repository.Update(ctx, id, details.toPatch()); err != nil {
		return fmt.Errorf("failed to update product with ID %d: %w", id, err)
	}
	return nil
}
