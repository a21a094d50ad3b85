// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the store.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - FieldErrors: the typed result of a failed validation, one entry per
//     failing form field. It matches ErrInvalidInput with errors.Is.
//
// Usage patterns:
//  1. Inject a Validator into a service wrapper.
//  2. Call Validate with context, value, and optional field names.
//  3. Extract the per-field messages with AsFieldErrors to re-render a form.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
