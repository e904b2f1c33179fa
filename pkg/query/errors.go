package query

import (
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	ErrUnknownOperator    = errors.New("unknown operator")
	ErrUnsupportedValue   = errors.New("unsupported value type")
	ErrInvalidCriteria    = errors.New("invalid criteria document")
	ErrInvalidOptions     = errors.New("invalid options document")
	ErrInvalidSort        = errors.New("invalid sort specification")
	ErrMixedSortDirection = errors.New("sort fields must share one direction")
	ErrInvalidInteger     = errors.New("invalid integer value")
	ErrInvalidBoolean     = errors.New("invalid boolean value")
	ErrNotStruct          = errors.New("criteria record must be a struct")
)

// FieldError ties a decoding error to the logical field it came from.
type FieldError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}
