// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages written into operator
// HTTP error responses. Keeping them in one place keeps the wording
// consistent across handlers and middleware.
package app

const (
	// MsgLedgerUnavailable is returned when the ledger cannot be read.
	// Storage details are logged, not exposed.
	MsgLedgerUnavailable = "ledger is unavailable"

	// MsgLedgerKindNotFound is returned when a known kind is missing from the
	// ledger snapshot.
	MsgLedgerKindNotFound = "ledger kind not found"

	// MsgReadOnlyAPI is returned for any non-GET request to a known path.
	MsgReadOnlyAPI = "status API is read-only"

	// MsgInternalServerError covers failures with no more specific message.
	MsgInternalServerError = "internal server error"
)
