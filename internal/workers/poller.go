// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/pos-sync/internal/logger"
	"github.com/MKhiriev/pos-sync/internal/utils"
	"github.com/MKhiriev/pos-sync/models"
)

// ErrInvalidInterval is returned by [NewPoller] for a non-positive interval.
var ErrInvalidInterval = errors.New("poll interval must be positive")

// Poller runs a task once right away and then again interval after the
// previous run has finished. Runs of one Poller never overlap.
type Poller struct {
	name     string
	interval time.Duration
	task     Task

	traceIDs *utils.UUIDGenerator

	mu    sync.Mutex
	state models.JobState

	logger *logger.Logger
}

func NewPoller(name string, interval time.Duration, task Task, log *logger.Logger) (*Poller, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %s got %s", ErrInvalidInterval, name, interval)
	}

	return &Poller{
		name:     name,
		interval: interval,
		task:     task,
		traceIDs: utils.NewUUIDGenerator(),
		state:    models.JobState{Name: name, Interval: interval.String()},
		logger:   log.ForJob(name),
	}, nil
}

func (p *Poller) Name() string {
	return p.name
}

// Run implements [Worker]. The timer is re-armed only after a run returns,
// so a slow tick delays the next one instead of piling up behind it.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info().Dur("interval", p.interval).Msg("poller started")
	defer p.logger.Info().Msg("poller stopped")

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
			p.runOnce(ctx)
			if ctx.Err() != nil {
				return nil
			}
			timer.Reset(p.interval)
		}
	}
}

// State implements [Worker].
func (p *Poller) State() models.JobState {
	p.mu.Lock()
	defer p.mu.Unlock()

	state := p.state
	if state.LastStartedAt != nil {
		t := *state.LastStartedAt
		state.LastStartedAt = &t
	}
	if state.LastFinishedAt != nil {
		t := *state.LastFinishedAt
		state.LastFinishedAt = &t
	}
	return state
}

func (p *Poller) runOnce(ctx context.Context) {
	if !p.begin() {
		p.logger.Warn().Msg("previous tick still running, skipping")
		return
	}

	traceID := p.traceIDs.Generate()
	ctx = utils.WithTraceID(ctx, traceID)
	log := p.logger.With().Str("trace_id", traceID).Logger()

	start := time.Now()
	err := p.safeRun(ctx)
	p.finish(err)

	if err != nil {
		log.Warn().Err(err).Dur("duration", time.Since(start)).Msg("poll tick failed")
		return
	}
	log.Debug().Dur("duration", time.Since(start)).Msg("poll tick finished")
}

// safeRun turns a panicking task into a failed tick.
func (p *Poller) safeRun(ctx context.Context) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("poll task panicked: %v", rec)
		}
	}()

	return p.task(ctx)
}

func (p *Poller) begin() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state.InFlight {
		return false
	}

	now := time.Now()
	p.state.InFlight = true
	p.state.LastStartedAt = &now
	return true
}

func (p *Poller) finish(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	p.state.InFlight = false
	p.state.LastFinishedAt = &now
	p.state.Runs++
	if err != nil {
		p.state.Failures++
		p.state.LastError = err.Error()
	} else {
		p.state.LastError = ""
	}
}
