package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidInput is matched by every [FieldErrors] value.
	ErrInvalidInput = errors.New("invalid input")

	ErrRequired     = errors.New("is required")
	ErrTooLong      = errors.New("is too long")
	ErrInvalidDate  = errors.New("must be a date in YYYY-MM-DD format")
	ErrNotAnInteger = errors.New("must be a whole number")
	ErrNotPositive  = errors.New("must be greater than zero")
	ErrNegative     = errors.New("must not be negative")
	ErrInvalidID    = errors.New("invalid id")
)
