// Package rest provides HTTP handlers for product-related operations.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/abgdnv/gocatalog/internal/platform/web"
	producterrors "github.com/abgdnv/gocatalog/internal/product/errors"
	"github.com/abgdnv/gocatalog/internal/product/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	productIDParam     = "productId"
	maxBodyBytes       = 1 << 20
	invalidBodyMessage = "Invalid request body"
)

type Handler struct {
	service  service.ProductService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new instance of Handler with the provided service.
func NewHandler(svc service.ProductService, logger *slog.Logger) *Handler {
	return &Handler{
		service:  svc,
		validate: service.NewValidator(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the catalog service.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/v1/products/{"+productIDParam+"}", func(r chi.Router) {
		r.Get("/", web.Handle(h.logger, h.FindByID))
		r.Post("/details", web.Handle(h.logger, h.UpdateDetails))
	})

	r.Get("/healthz", h.HealthCheck)
}

// FindByID retrieves a product by its ID.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) error {
	id, err := web.PathInt64Gte(r, productIDParam, 1)
	if err != nil {
		return err
	}

	h.logger.DebugContext(r.Context(), "Received request to find product by ID", "ID", id)
	found, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, producterrors.ErrProductNotFound) {
			return web.NotFound(notFoundMessage(id)).Wrap(err)
		}
		return fmt.Errorf("retrieving product %d: %w", id, err)
	}
	// the response must satisfy the same schema as the request
	if err := h.validate.Struct(found); err != nil {
		return fmt.Errorf("product %d violates the response schema: %w", id, err)
	}
	h.logger.DebugContext(r.Context(), "Successfully retrieved product", "ID", found.ID, "Name", found.Name)
	web.RespondJSON(w, h.logger, http.StatusOK, found)
	return nil
}

// UpdateDetails applies a partial update to a product. Only the keys present in the body change.
func (h *Handler) UpdateDetails(w http.ResponseWriter, r *http.Request) error {
	id, err := web.PathInt64Gte(r, productIDParam, 1)
	if err != nil {
		return err
	}

	var details service.ProductDetailsDto
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&details); err != nil {
		return web.BadRequest(invalidBodyMessage).Wrap(err)
	}
	// the body must hold exactly one JSON value
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after JSON object")
		}
		return web.BadRequest(invalidBodyMessage).Wrap(err)
	}
	h.logger.DebugContext(r.Context(), "Received request to update product details", "ID", id, "details", details)

	if err := h.service.UpdateDetails(r.Context(), id, details); err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.Is(err, producterrors.ErrIDMismatch):
			return web.BadRequest("Invalid input data: Body id must match path productId").Wrap(err)
		case errors.As(err, &validationErr):
			return web.BadRequest("Invalid input data: " + validationErr.Error()).Wrap(err)
		case errors.Is(err, producterrors.ErrProductNotFound):
			return web.NotFound(notFoundMessage(id)).Wrap(err)
		default:
			return fmt.Errorf("updating product %d: %w", id, err)
		}
	}
	h.logger.InfoContext(r.Context(), "Product details updated successfully", "ID", id)
	web.RespondNoContent(w)
	return nil
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func notFoundMessage(id int64) string {
	return fmt.Sprintf("Product %d not found", id)
}
