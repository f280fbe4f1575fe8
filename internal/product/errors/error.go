// Package errors provides custom error types for product-related operations.
package errors

import "errors"

var ErrProductNotFound = errors.New("product not found")

// ErrIDMismatch is returned when the id inside an update body differs from the addressed product.
var ErrIDMismatch = errors.New("body id does not match product id")
