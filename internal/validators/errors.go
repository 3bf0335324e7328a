// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyRecordID     = errors.New("record id is empty")
	ErrMalformedRecordID = errors.New("record id contains a ledger separator")
	ErrMissingBranchID   = errors.New("branch id is required for a branch request")
)
