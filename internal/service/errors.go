// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNoBranchesConfigured is returned when a head office has nothing to
	// iterate over.
	ErrNoBranchesConfigured = errors.New("no branches configured for head office")

	// ErrBranchInitializeFailed wraps the failure of one per-branch request of
	// a head-office cycle.
	ErrBranchInitializeFailed = errors.New("branch initialize failed")

	// ErrInitializeFailed wraps the failure of the request that carried the
	// pending id lists.
	ErrInitializeFailed = errors.New("initialize failed")

	// ErrFetchIDsFailed wraps a failed pending-id discovery request.
	ErrFetchIDsFailed = errors.New("fetch pending ids failed")

	// ErrInvalidPayload wraps a validation failure of an outgoing request or
	// a data service response.
	ErrInvalidPayload = errors.New("invalid sync payload")

	// ErrLedgerUnavailable wraps ledger read or write failures.
	ErrLedgerUnavailable = errors.New("ledger unavailable")
)
