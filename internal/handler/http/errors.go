package http

import "errors"

var (
	// ErrInvalidID is returned when the {id} path segment is not a positive integer.
	// Such requests are answered like an unknown record.
	ErrInvalidID = errors.New("invalid id in path")
)
