package service

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/abgdnv/gocatalog/internal/platform/optional"
	"github.com/abgdnv/gocatalog/internal/product/store"
	"github.com/go-playground/validator/v10"
)

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID          int64   `json:"id"          validate:"required,gte=1"`
	Name        string  `json:"name"        validate:"required,min=1"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Description *string `json:"description"`
}

// ProductDetailsDto is the body of a partial product update. Only the keys present in the JSON
// payload are applied; see optional.Field.
type ProductDetailsDto struct {
	ID          optional.Field[int64]   `json:"id"`
	Name        optional.Field[string]  `json:"name"`
	Price       optional.Field[float64] `json:"price"`
	Description optional.Field[string]  `json:"description"`
}

// productDetailsRules carries the validation rules of ProductDetailsDto; nil means not provided.
type productDetailsRules struct {
	ID    *int64   `json:"id"    validate:"required,gte=1"`
	Name  *string  `json:"name"  validate:"omitnil,min=1"`
	Price *float64 `json:"price" validate:"omitnil,gte=0"`
}

// ValidationError lists the fields that violate the product schema, keyed by JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return strings.Join(parts, "; ")
}

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the fields present in d against the product schema.
// id is mandatory, and id, name and price may not be null. It returns a *ValidationError.
func (d ProductDetailsDto) Validate(v *validator.Validate) error {
	fields := make(map[string]string)
	for name, isNull := range map[string]bool{"id": d.ID.Null, "name": d.Name.Null, "price": d.Price.Null} {
		if isNull {
			fields[name] = "must not be null"
		}
	}

	rules := productDetailsRules{ID: d.ID.Ptr(), Name: d.Name.Ptr(), Price: d.Price.Ptr()}
	if err := v.Struct(rules); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("validating product details: %w", err)
		}
		for _, fieldErr := range validationErrors {
			if _, seen := fields[fieldErr.Field()]; seen {
				continue
			}
			// fieldErr.Tag() returns "required", "min", etc.
			fields[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// toPatch keeps only the mutable fields; the id is fixed by the addressed product.
func (d ProductDetailsDto) toPatch() store.ProductPatch {
	return store.ProductPatch{
		Name:        d.Name,
		Price:       d.Price,
		Description: d.Description,
	}
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
	}
}
