// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/pos-sync/models"
)

type memoryLedger struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryLedger returns a process-local [LedgerStorage]. Its content is lost
// when the process exits.
func NewMemoryLedger() LedgerStorage {
	return &memoryLedger{values: make(map[string]string)}
}

func (m *memoryLedger) Read(_ context.Context, kind models.IDKind) (string, bool, error) {
	if err := checkKind(kind); err != nil {
		return "", false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.values[kind.LedgerKey()]
	return value, ok, nil
}

func (m *memoryLedger) Merge(_ context.Context, kind models.IDKind, ids models.RecordIDs) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := models.ParseRecordIDs(m.values[kind.LedgerKey()])
	merged := mergeIDs(stored, ids)
	if len(merged) > len(stored) {
		m.values[kind.LedgerKey()] = merged.Join()
	}

	return nil
}

func (m *memoryLedger) Subtract(_ context.Context, kind models.IDKind, acknowledged models.RecordIDs) error {
	if err := checkKind(kind); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.values[kind.LedgerKey()]
	if !ok {
		return nil
	}

	stored := models.ParseRecordIDs(value)
	rest := subtractIDs(stored, acknowledged)
	if len(rest) != len(stored) {
		m.values[kind.LedgerKey()] = rest.Join()
	}

	return nil
}

func (m *memoryLedger) Take(_ context.Context, kind models.IDKind, limit int) (models.RecordIDs, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return takeIDs(models.ParseRecordIDs(m.values[kind.LedgerKey()]), limit), nil
}

func (m *memoryLedger) Snapshot(_ context.Context) ([]models.LedgerSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshots := make([]models.LedgerSnapshot, 0, len(models.AllIDKinds()))
	for _, kind := range models.AllIDKinds() {
		value, ok := m.values[kind.LedgerKey()]
		snapshots = append(snapshots, models.LedgerSnapshot{
			Kind:    kind,
			Key:     kind.LedgerKey(),
			IDs:     takeIDs(models.ParseRecordIDs(value), 0),
			Present: ok,
		})
	}

	return snapshots, nil
}
