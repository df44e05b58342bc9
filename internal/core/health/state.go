package health

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Status is the externally reported health of the process.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

// Report is the JSON body of a health evaluation.
type Report struct {
	Status Status `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Pinger probes store connectivity with a trivial query.
type Pinger interface {
	Ping(ctx context.Context) error
}

// State owns the process-wide failure flag. The flag is the only mutable
// state shared between request goroutines; trigger and remediate race as
// last-writer-wins, which is acceptable for a fault-injection fixture.
//
// The force-healthy override is a function, not a cached value: it is
// consulted fresh on every evaluation so operators can flip it at runtime.
// The override changes how the state is reported, never the state itself.
type State struct {
	failureTriggered atomic.Bool
	forceHealthy     func() bool
	store            Pinger
	logger           *slog.Logger
}

func NewState(forceHealthy func() bool, store Pinger, logger *slog.Logger) *State {
	return &State{
		forceHealthy: forceHealthy,
		store:        store,
		logger:       logger,
	}
}

// Evaluate computes the current health report.
//
// The failure flag (unless overridden) is the only thing that makes the
// process report unhealthy. A failed store probe downgrades the report to
// "degraded" but stays a passing liveness signal: a broken database should
// get the todo endpoints returning 500s, not the supervisor killing the pod.
func (s *State) Evaluate(ctx context.Context) Report {
	if !s.forceHealthy() && s.failureTriggered.Load() {
		return Report{
			Status: StatusUnhealthy,
			Reason: "failure mode triggered; set FORCE_HEALTHY=true or POST /remediate to recover",
		}
	}

	if err := s.store.Ping(ctx); err != nil {
		return Report{
			Status: StatusDegraded,
			Reason: "store unreachable: " + err.Error(),
		}
	}

	return Report{Status: StatusHealthy}
}

// TriggerFailure flips the process into failure mode. Idempotent.
func (s *State) TriggerFailure() {
	s.failureTriggered.Store(true)
	s.logger.Error("failure triggered, health checks will now fail")
}

// Remediate clears the failure flag. Idempotent.
func (s *State) Remediate() {
	s.failureTriggered.Store(false)
	s.logger.Info("remediation applied, failure state cleared")
}

// Failing reports the raw flag, ignoring the force-healthy override.
func (s *State) Failing() bool {
	return s.failureTriggered.Load()
}
