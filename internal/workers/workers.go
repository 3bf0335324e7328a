// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/pos-sync/models"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add registers w. It must be called before Run.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned, which happens once ctx is cancelled.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}

	return g.Wait()
}

// States returns the current state of every worker in registration order.
func (w *Workers) States() []models.JobState {
	states := make([]models.JobState, 0, len(w.workers))
	for _, worker := range w.workers {
		states = append(states, worker.State())
	}
	return states
}
