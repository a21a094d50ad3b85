// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

// FieldError is a validation failure of one form field.
type FieldError struct {
	// Field is the form field name, one of the Field* constants.
	Field string

	// Err is the reason, one of the sentinel errors of this package.
	Err error
}

func (e FieldError) Error() string {
	return e.Field + " " + e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// FieldErrors is the list of failures of one validated value. A nil or empty
// FieldErrors means the value is valid.
//
// FieldErrors matches [ErrInvalidInput] and every reason it holds with
// [errors.Is].
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, e := range fe {
		msgs = append(msgs, e.Error())
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(msgs, "; ")
}

func (fe FieldErrors) Unwrap() []error {
	errs := make([]error, 0, len(fe)+1)
	errs = append(errs, ErrInvalidInput)
	for _, e := range fe {
		errs = append(errs, e)
	}
	return errs
}

// Add appends a failure of field.
func (fe *FieldErrors) Add(field string, err error) {
	*fe = append(*fe, FieldError{Field: field, Err: err})
}

// Has reports whether field failed validation.
func (fe FieldErrors) Has(field string) bool {
	for _, e := range fe {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Messages returns the first failure reason per field, keyed by field name.
// Forms render it next to the inputs.
func (fe FieldErrors) Messages() map[string]string {
	msgs := make(map[string]string, len(fe))
	for _, e := range fe {
		if _, ok := msgs[e.Field]; !ok {
			msgs[e.Field] = e.Err.Error()
		}
	}
	return msgs
}

// OrNil returns nil for an empty list so callers can return it as an error.
func (fe FieldErrors) OrNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// AsFieldErrors extracts the field errors carried by err.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
