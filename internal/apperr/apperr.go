package apperr

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind classifies an error for translation to an HTTP status at the boundary.
type Kind int

const (
	KindUnauthorized Kind = iota
	KindBadRequest
	KindNotFound
	KindConflict
	KindInternal
)

// Error is the typed error raised at the point of detection by services and
// repositories. Handlers map it to a status code and response envelope.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

// Validation wraps a field -> message map from the validation layer.
func Validation(fields map[string]string) *Error {
	return &Error{Kind: KindBadRequest, Message: "validation failed", Fields: fields}
}

func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Message: entity + " not found"}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", cause: cause}
}

// InsufficientStock reports every product that would have gone negative.
func InsufficientStock(productIDs []uuid.UUID) *Error {
	ids := make([]string, len(productIDs))
	fields := make(map[string]string, len(productIDs))
	for i, id := range productIDs {
		ids[i] = id.String()
		fields[id.String()] = "insufficient stock"
	}
	return &Error{
		Kind:    KindConflict,
		Message: fmt.Sprintf("insufficient stock for products: %s", strings.Join(ids, ", ")),
		Fields:  fields,
	}
}

// HTTPStatus maps a Kind to its HTTP status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindUnauthorized:
		return 401
	case KindBadRequest:
		return 400
	case KindNotFound:
		return 404
	case KindConflict:
		return 409
	default:
		return 500
	}
}
