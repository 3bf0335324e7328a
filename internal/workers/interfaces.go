// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background pollers of pos-sync.
// It defines the Worker interface, a [Poller] that repeats a task on a fixed
// cadence without ever overlapping itself, and a Workers aggregate that runs
// all pollers until the context is cancelled.
package workers

import (
	"context"

	"github.com/MKhiriev/pos-sync/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled. It returns nil on cancellation; a
// non-nil error stops every other worker of the same [Workers] group.
type Worker interface {
	Run(ctx context.Context) error
	State() models.JobState
}

// Task is one unit of poll work. Errors are recorded, never escalated.
type Task func(ctx context.Context) error
