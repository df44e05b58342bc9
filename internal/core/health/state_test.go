package health_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"sredemo/internal/core/health"
)

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping(ctx context.Context) error { return p.err }

func newState(force *atomic.Bool, pinger health.Pinger) *health.State {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return health.NewState(force.Load, pinger, logger)
}

func TestEvaluateNominal(t *testing.T) {
	state := newState(&atomic.Bool{}, &stubPinger{})

	report := state.Evaluate(context.Background())
	assert.Equal(t, health.StatusHealthy, report.Status)
	assert.Empty(t, report.Reason)
}

func TestTriggerAndRemediate(t *testing.T) {
	state := newState(&atomic.Bool{}, &stubPinger{})

	state.TriggerFailure()
	assert.True(t, state.Failing())
	assert.Equal(t, health.StatusUnhealthy, state.Evaluate(context.Background()).Status)

	// Idempotent
	state.TriggerFailure()
	assert.True(t, state.Failing())

	state.Remediate()
	assert.False(t, state.Failing())
	assert.Equal(t, health.StatusHealthy, state.Evaluate(context.Background()).Status)

	state.Remediate()
	assert.False(t, state.Failing())
}

func TestForceHealthyMasksFailureOnly(t *testing.T) {
	force := &atomic.Bool{}
	state := newState(force, &stubPinger{})

	state.TriggerFailure()
	force.Store(true)

	// Reported healthy, but the underlying flag is untouched.
	assert.Equal(t, health.StatusHealthy, state.Evaluate(context.Background()).Status)
	assert.True(t, state.Failing())

	// The override is consulted fresh on every call.
	force.Store(false)
	assert.Equal(t, health.StatusUnhealthy, state.Evaluate(context.Background()).Status)
}

func TestDegradedOnPingFailure(t *testing.T) {
	pinger := &stubPinger{err: errors.New("connection refused")}
	state := newState(&atomic.Bool{}, pinger)

	report := state.Evaluate(context.Background())
	assert.Equal(t, health.StatusDegraded, report.Status)
	assert.Contains(t, report.Reason, "connection refused")
}

func TestUnhealthySkipsProbe(t *testing.T) {
	// When failing, the store probe result is irrelevant.
	pinger := &stubPinger{err: errors.New("should not matter")}
	state := newState(&atomic.Bool{}, pinger)

	state.TriggerFailure()
	report := state.Evaluate(context.Background())
	assert.Equal(t, health.StatusUnhealthy, report.Status)
	assert.NotContains(t, report.Reason, "should not matter")
}

func TestConcurrentTriggerRemediate(t *testing.T) {
	// Last-writer-wins between concurrent trigger/remediate is fine; this
	// just has to be race-free under -race.
	state := newState(&atomic.Bool{}, &stubPinger{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			state.TriggerFailure()
		}()
		go func() {
			defer wg.Done()
			state.Remediate()
		}()
	}
	wg.Wait()

	report := state.Evaluate(context.Background())
	assert.Contains(t, []health.Status{health.StatusHealthy, health.StatusUnhealthy}, report.Status)
}
