// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/MKhiriev/pos-sync/internal/logger"
	"github.com/MKhiriev/pos-sync/internal/utils"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// runPoller starts p and returns a stop func that cancels and waits for Run.
func runPoller(t *testing.T, p *Poller) (stop func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	return func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("poller did not stop")
		}
	}
}

func TestNewPoller_InvalidInterval(t *testing.T) {
	_, err := NewPoller("x", 0, func(context.Context) error { return nil }, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestPoller_RunsImmediately(t *testing.T) {
	ran := make(chan struct{}, 1)
	p, err := NewPoller("initializer", time.Hour, func(context.Context) error {
		ran <- struct{}{}
		return nil
	}, logger.Nop())
	require.NoError(t, err)

	stop := runPoller(t, p)
	defer stop()

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("first tick did not run immediately")
	}
}

func TestPoller_RepeatsOnInterval(t *testing.T) {
	var calls atomic.Int64
	p, err := NewPoller("fetcher", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	}, logger.Nop())
	require.NoError(t, err)

	stop := runPoller(t, p)
	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	stop()

	afterStop := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, afterStop, calls.Load(), "no ticks after stop")
}

func TestPoller_NeverOverlaps(t *testing.T) {
	var (
		running  atomic.Int32
		maxSeen  atomic.Int32
		finished atomic.Int32
	)
	p, err := NewPoller("slow", time.Millisecond, func(context.Context) error {
		n := running.Add(1)
		defer running.Add(-1)
		if n > maxSeen.Load() {
			maxSeen.Store(n)
		}
		time.Sleep(15 * time.Millisecond)
		finished.Add(1)
		return nil
	}, logger.Nop())
	require.NoError(t, err)

	stop := runPoller(t, p)
	require.Eventually(t, func() bool { return finished.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	stop()

	assert.Equal(t, int32(1), maxSeen.Load())
}

func TestPoller_WaitsIntervalAfterRunFinishes(t *testing.T) {
	var (
		mu     sync.Mutex
		starts []time.Time
		ends   []time.Time
	)
	p, err := NewPoller("spaced", 20*time.Millisecond, func(context.Context) error {
		mu.Lock()
		starts = append(starts, time.Now())
		mu.Unlock()
		time.Sleep(30 * time.Millisecond)
		mu.Lock()
		ends = append(ends, time.Now())
		mu.Unlock()
		return nil
	}, logger.Nop())
	require.NoError(t, err)

	stop := runPoller(t, p)
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(starts) >= 2
	}, 2*time.Second, 5*time.Millisecond)
	stop()

	mu.Lock()
	defer mu.Unlock()
	assert.GreaterOrEqual(t, starts[1].Sub(ends[0]), 20*time.Millisecond)
}

func TestPoller_RecordsFailuresAndRecovers(t *testing.T) {
	var calls atomic.Int64
	p, err := NewPoller("flaky", 5*time.Millisecond, func(context.Context) error {
		switch calls.Add(1) {
		case 1:
			return errors.New("connection refused")
		case 2:
			panic("nil map")
		default:
			return nil
		}
	}, logger.Nop())
	require.NoError(t, err)

	stop := runPoller(t, p)
	require.Eventually(t, func() bool { return p.State().Runs >= 3 }, time.Second, 5*time.Millisecond)
	stop()

	state := p.State()
	assert.Equal(t, "flaky", state.Name)
	assert.Equal(t, "5ms", state.Interval)
	assert.Equal(t, int64(2), state.Failures)
	assert.Empty(t, state.LastError, "a successful tick clears the last error")
	assert.False(t, state.InFlight)
	require.NotNil(t, state.LastStartedAt)
	require.NotNil(t, state.LastFinishedAt)
}

func TestPoller_PanicIsRecorded(t *testing.T) {
	done := make(chan struct{})
	var once sync.Once
	p, err := NewPoller("panicky", time.Hour, func(context.Context) error {
		defer once.Do(func() { close(done) })
		panic("boom")
	}, logger.Nop())
	require.NoError(t, err)

	stop := runPoller(t, p)
	<-done
	require.Eventually(t, func() bool { return p.State().Runs == 1 }, time.Second, time.Millisecond)
	stop()

	assert.Contains(t, p.State().LastError, "poll task panicked: boom")
}

func TestPoller_TaskGetsTraceID(t *testing.T) {
	ids := make(chan string, 2)
	p, err := NewPoller("traced", time.Millisecond, func(ctx context.Context) error {
		id, _ := utils.GetTraceIDFromContext(ctx)
		select {
		case ids <- id:
		default:
		}
		return nil
	}, logger.Nop())
	require.NoError(t, err)

	stop := runPoller(t, p)
	first, second := <-ids, <-ids
	stop()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second, "every tick gets its own trace id")
}

func TestPoller_StateInFlight(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	p, err := NewPoller("blocking", time.Hour, func(ctx context.Context) error {
		close(started)
		select {
		case <-release:
		case <-ctx.Done():
		}
		return nil
	}, logger.Nop())
	require.NoError(t, err)

	stop := runPoller(t, p)
	<-started
	assert.True(t, p.State().InFlight)

	close(release)
	require.Eventually(t, func() bool { return !p.State().InFlight }, time.Second, time.Millisecond)
	stop()
}

func TestPoller_StopsDuringSlowTask(t *testing.T) {
	started := make(chan struct{})
	p, err := NewPoller("cancellable", time.Hour, func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}, logger.Nop())
	require.NoError(t, err)

	stop := runPoller(t, p)
	<-started
	stop()

	assert.Equal(t, int64(1), p.State().Failures)
}
