// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-coffee-freezer handlers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place ensures consistent wording across the pages.
package app

const (
	// MsgPageNotFound is shown for unknown paths and malformed ids.
	MsgPageNotFound = "This page does not exist."

	// MsgBagNotFound is shown when no bag has the requested id.
	MsgBagNotFound = "This bag does not exist."

	// MsgVialNotFound is shown when no vial batch has the requested id.
	MsgVialNotFound = "These vials do not exist."

	// MsgOutOfStock is the plain-text answer to consuming from an empty batch.
	MsgOutOfStock = "No vials to consume!"

	// MsgBagAlreadyFrozen is shown when freezing a bag a second time.
	MsgBagAlreadyFrozen = "This bag is already frozen."

	// MsgVialHasNoSourceBag is shown when unfreezing a batch that was entered
	// by hand or whose bag was deleted.
	MsgVialHasNoSourceBag = "These vials were not frozen from a bag that still exists, so they cannot be unfrozen."

	// MsgInvalidForm is shown when a submitted form cannot be parsed.
	MsgInvalidForm = "The submitted form is invalid."

	// MsgConstraintViolation is shown when the database rejects the values.
	MsgConstraintViolation = "The submitted values were rejected by the database."

	// MsgStoreUnavailable is shown when the database is busy or unreachable.
	MsgStoreUnavailable = "The database is busy, please try again."

	// MsgInternalServerError is shown when an unexpected server-side
	// failure occurs that the user cannot resolve.
	MsgInternalServerError = "Something went wrong."
)
