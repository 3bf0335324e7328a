// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pos-sync/internal/config"
	"github.com/MKhiriev/pos-sync/internal/logger"
)

// MemoryDSN selects the in-process ledger instead of an SQLite file.
const MemoryDSN = "memory"

// Storages groups the storage layer handed to the service layer.
type Storages struct {
	// Ledger keeps the pending record IDs between sync cycles.
	Ledger LedgerStorage

	db *DB
}

// NewStorages initialises the storage layer:
//  1. For [MemoryDSN] it returns a process-local ledger and stops there.
//  2. Otherwise it opens the SQLite file at cfg.DB.DSN, creating it if needed.
//  3. Runs pending schema migrations via [DB.Migrate].
//
// Returns an error if the database cannot be opened or migrated.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	if cfg.DB.DSN == MemoryDSN {
		return &Storages{Ledger: NewMemoryLedger()}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Ledger: NewSQLiteLedger(db, logger),
		db:     db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
