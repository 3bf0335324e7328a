// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/pos-sync/internal/logger"
	"github.com/MKhiriev/pos-sync/models"
)

const (
	ledgerTable     = "pending_ids"
	ledgerKeyColumn = "ledger_key"
	ledgerIDsColumn = "ids"
	ledgerUpdatedAt = "updated_at"

	ledgerUpsertSuffix = "ON CONFLICT(ledger_key) DO UPDATE SET ids = excluded.ids, updated_at = excluded.updated_at"

	ledgerMaxAttempts = 3
	ledgerRetryDelay  = 50 * time.Millisecond
)

// queryExecer is satisfied by both *sql.DB and *sql.Tx.
type queryExecer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type sqliteLedger struct {
	db *DB

	// mu serializes read-modify-write cycles; SQLite transactions alone would
	// surface SQLITE_BUSY to concurrent writers instead of queueing them.
	mu sync.Mutex

	logger *logger.Logger
}

// NewSQLiteLedger returns a [LedgerStorage] backed by the pending_ids table.
// The schema must already be migrated.
func NewSQLiteLedger(db *DB, logger *logger.Logger) LedgerStorage {
	return &sqliteLedger{db: db, logger: logger}
}

func (l *sqliteLedger) Read(ctx context.Context, kind models.IDKind) (string, bool, error) {
	if err := checkKind(kind); err != nil {
		return "", false, err
	}

	return l.read(ctx, l.db, kind)
}

func (l *sqliteLedger) Merge(ctx context.Context, kind models.IDKind, ids models.RecordIDs) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	return l.update(ctx, kind, func(stored models.RecordIDs, _ bool) (models.RecordIDs, bool) {
		merged := mergeIDs(stored, ids)
		return merged, len(merged) > len(stored)
	})
}

func (l *sqliteLedger) Subtract(ctx context.Context, kind models.IDKind, acknowledged models.RecordIDs) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	if len(acknowledged) == 0 {
		return nil
	}

	return l.update(ctx, kind, func(stored models.RecordIDs, present bool) (models.RecordIDs, bool) {
		if !present {
			return nil, false
		}
		rest := subtractIDs(stored, acknowledged)
		return rest, len(rest) != len(stored)
	})
}

func (l *sqliteLedger) Take(ctx context.Context, kind models.IDKind, limit int) (models.RecordIDs, error) {
	value, _, err := l.Read(ctx, kind)
	if err != nil {
		return nil, err
	}

	return takeIDs(models.ParseRecordIDs(value), limit), nil
}

func (l *sqliteLedger) Snapshot(ctx context.Context) ([]models.LedgerSnapshot, error) {
	snapshots := make([]models.LedgerSnapshot, 0, len(models.AllIDKinds()))
	for _, kind := range models.AllIDKinds() {
		value, present, err := l.read(ctx, l.db, kind)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, models.LedgerSnapshot{
			Kind:    kind,
			Key:     kind.LedgerKey(),
			IDs:     takeIDs(models.ParseRecordIDs(value), 0),
			Present: present,
		})
	}

	return snapshots, nil
}

type updateFunc func(stored models.RecordIDs, present bool) (next models.RecordIDs, write bool)

// update runs updateOnce, retrying while the database reports lock contention.
func (l *sqliteLedger) update(ctx context.Context, kind models.IDKind, fn updateFunc) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var err error
	for attempt := 1; attempt <= ledgerMaxAttempts; attempt++ {
		err = l.updateOnce(ctx, kind, fn)
		if err == nil || l.db.errorClassificator == nil ||
			l.db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		l.logger.Warn().Err(err).
			Str("func", "sqliteLedger.update").
			Str("kind", string(kind)).
			Int("attempt", attempt).
			Msg("ledger database is busy, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * ledgerRetryDelay):
		}
	}

	return err
}

// updateOnce runs read, fn and the optional write in a single transaction.
func (l *sqliteLedger) updateOnce(ctx context.Context, kind models.IDKind, fn updateFunc) (err error) {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		l.logger.Err(err).
			Str("func", "sqliteLedger.update").
			Str("kind", string(kind)).
			Msg("failed to begin ledger transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	value, present, err := l.read(ctx, tx, kind)
	if err != nil {
		return err
	}

	next, write := fn(models.ParseRecordIDs(value), present)
	if write {
		if err = l.write(ctx, tx, kind, next); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		l.logger.Err(err).
			Str("func", "sqliteLedger.update").
			Str("kind", string(kind)).
			Msg("failed to commit ledger transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *sqliteLedger) read(ctx context.Context, q queryExecer, kind models.IDKind) (string, bool, error) {
	query, args, err := sq.Select(ledgerIDsColumn).
		From(ledgerTable).
		Where(sq.Eq{ledgerKeyColumn: kind.LedgerKey()}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = q.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		l.logger.Err(err).
			Str("func", "sqliteLedger.read").
			Str("kind", string(kind)).
			Msg("failed to read ledger key")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (l *sqliteLedger) write(ctx context.Context, q queryExecer, kind models.IDKind, ids models.RecordIDs) error {
	query, args, err := sq.Insert(ledgerTable).
		Columns(ledgerKeyColumn, ledgerIDsColumn, ledgerUpdatedAt).
		Values(kind.LedgerKey(), ids.Join(), time.Now().UTC()).
		Suffix(ledgerUpsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		l.logger.Err(err).
			Str("func", "sqliteLedger.write").
			Str("kind", string(kind)).
			Int("count", len(ids)).
			Msg("failed to upsert ledger key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
