package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// Error codes carried by ErrorResponse.
const (
	CodeNotFound            = "NOT_FOUND"
	CodeBadRequest          = "BAD_REQUEST"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
	CodeError               = "ERROR"
)

// UnexpectedErrorMessage is the only message clients see for failures that were not raised as *Error.
const UnexpectedErrorMessage = "An unexpected error occurred"

// ErrorResponse is the body of every failed response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error is an HTTP failure raised by a handler. Status and Message are sent to the client as-is.
type Error struct {
	Status  int
	Message string
	Err     error // internal cause, logged only
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap attaches the internal cause of e and returns e.
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

// NewError creates an *Error with the given status and message.
func NewError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// NotFound creates a 404 *Error.
func NotFound(message string) *Error {
	return NewError(http.StatusNotFound, message)
}

// BadRequest creates a 400 *Error.
func BadRequest(message string) *Error {
	return NewError(http.StatusBadRequest, message)
}

// CodeForStatus maps an HTTP status to its error code.
func CodeForStatus(status int) string {
	switch {
	case status == http.StatusNotFound:
		return CodeNotFound
	case status == http.StatusBadRequest:
		return CodeBadRequest
	case status >= http.StatusInternalServerError:
		return CodeInternalServerError
	default:
		return CodeError
	}
}

// HandlerFunc is an http.HandlerFunc that reports failures by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts fn to http.HandlerFunc. A returned *Error is rendered with its own status and
// message; anything else becomes a generic 500 so that internal details never reach the client.
func Handle(logger *slog.Logger, fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}
		var httpErr *Error
		if errors.As(err, &httpErr) {
			level := slog.LevelWarn
			if httpErr.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.Log(r.Context(), level, "Request failed",
				"status", httpErr.Status,
				"error", err,
			)
			RespondError(w, logger, httpErr.Status, httpErr.Message)
			return
		}
		logger.ErrorContext(r.Context(), "Unhandled error", "error", err)
		RespondError(w, logger, http.StatusInternalServerError, UnexpectedErrorMessage)
	}
}

// NotFoundHandler renders unknown routes in the error schema.
func NotFoundHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondError(w, logger, http.StatusNotFound, fmt.Sprintf("Path %s not found", r.URL.Path))
	}
}

// MethodNotAllowedHandler renders unsupported methods in the error schema.
func MethodNotAllowedHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondError(w, logger, http.StatusMethodNotAllowed, fmt.Sprintf("Method %s not allowed", r.Method))
	}
}
