// Package apperror classifies failures into the kinds callers branch on.
package apperror

import (
	"errors"

	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/validator"
)

type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindNotFound   Kind = "NOT_FOUND"
	KindConflict   Kind = "CONFLICT"
	KindInternal   Kind = "INTERNAL"
)

// Error is a domain failure of a known kind. Domain packages declare their
// sentinels with New so errors.Is keeps working through wrapping.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf reports the kind of err. Validation error lists count as
// VALIDATION; anything unclassified is INTERNAL.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return KindValidation
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}

	return KindInternal
}
