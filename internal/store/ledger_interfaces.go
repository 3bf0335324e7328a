// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/pos-sync/models"
)

//go:generate mockgen -source=ledger_interfaces.go -destination=../mock/ledger_storage_mock.go -package=mock

// LedgerStorage is the persistent set of record ids still waiting to be
// initialized, one comma-joined value per [models.IDKind].
//
// Implementations must make every operation atomic with respect to the others
// so that pollers running in separate goroutines never lose an update.
type LedgerStorage interface {
	// Read returns the raw stored value for kind. present is false when the
	// key was never written; an empty value with present=true means the set
	// was emptied by Subtract.
	Read(ctx context.Context, kind models.IDKind) (value string, present bool, err error)

	// Merge unions ids into the stored set. Stored ids keep their order and
	// new ones are appended in the given order; duplicates and empty ids are
	// dropped. An empty ids list is a no-op and does not create the key.
	Merge(ctx context.Context, kind models.IDKind, ids models.RecordIDs) error

	// Subtract removes exactly the acknowledged ids. Ids that are not stored
	// are ignored. When nothing remains the key holds an empty string. A key
	// that was never written stays absent.
	Subtract(ctx context.Context, kind models.IDKind, acknowledged models.RecordIDs) error

	// Take returns up to limit ids in stored order without removing them.
	// limit <= 0 means no cap.
	Take(ctx context.Context, kind models.IDKind, limit int) (models.RecordIDs, error)

	// Snapshot returns the state of every kind.
	Snapshot(ctx context.Context) ([]models.LedgerSnapshot, error)
}
