// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// ErrUnknownIDKind is returned when a kind name does not match any [IDKind].
var ErrUnknownIDKind = errors.New("unknown id kind")

// IDKind names a family of records tracked by the ledger.
type IDKind string

const (
	IDKindProducts          IDKind = "products"
	IDKindBranchProducts    IDKind = "branch_products"
	IDKindBalanceUpdateLogs IDKind = "balance_update_logs"
)

var ledgerKeys = map[IDKind]string{
	IDKindProducts:          "productIds",
	IDKindBranchProducts:    "branchProductIds",
	IDKindBalanceUpdateLogs: "branchProductBalanceUpdateLogsIds",
}

// AllIDKinds returns every kind in a stable order.
func AllIDKinds() []IDKind {
	return []IDKind{IDKindProducts, IDKindBranchProducts, IDKindBalanceUpdateLogs}
}

// ParseIDKind validates s and returns the matching [IDKind].
func ParseIDKind(s string) (IDKind, error) {
	kind := IDKind(s)
	if _, ok := ledgerKeys[kind]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownIDKind, s)
	}
	return kind, nil
}

// LedgerKey returns the well-known persistent key the ids of this kind are
// stored under.
func (k IDKind) LedgerKey() string {
	return ledgerKeys[k]
}

// Valid reports whether k is one of the known kinds.
func (k IDKind) Valid() bool {
	_, ok := ledgerKeys[k]
	return ok
}
