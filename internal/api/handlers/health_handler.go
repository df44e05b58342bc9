package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"sredemo/internal/core/health"
)

// HealthHandler exposes the health evaluation plus the fault-injection
// surface (trigger, remediate, crash) used by remediation demos.
type HealthHandler struct {
	State  *health.State
	Logger *slog.Logger
	exit   func(int)
}

// NewHealthHandler wires the handler; exit is called by Crash and should be
// os.Exit outside of tests.
func NewHealthHandler(state *health.State, logger *slog.Logger, exit func(int)) *HealthHandler {
	return &HealthHandler{State: state, Logger: logger, exit: exit}
}

// Check handles GET /health. Only the failure flag (absent the override)
// produces a failing status; a broken store downgrades to "degraded" but
// stays a 200 so the supervisor does not restart a process that is merely
// waiting on its database.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	// Tight timeout: liveness probes must answer fast even with a hung store.
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	report := h.State.Evaluate(ctx)
	if report.Status == health.StatusUnhealthy {
		h.Logger.Warn("health check failing", "reason", report.Reason)
		respondJSON(w, http.StatusInternalServerError, report)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// TriggerFailure handles POST /trigger-failure.
func (h *HealthHandler) TriggerFailure(w http.ResponseWriter, r *http.Request) {
	h.State.TriggerFailure()
	respondJSON(w, http.StatusOK, map[string]string{
		"status":      "failure_triggered",
		"message":     "service is now in failure mode, health checks will fail",
		"remediation": "set FORCE_HEALTHY=true or POST /remediate",
	})
}

// Remediate handles POST /remediate.
func (h *HealthHandler) Remediate(w http.ResponseWriter, r *http.Request) {
	h.State.Remediate()
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "remediated",
		"message": "failure state cleared, service should report healthy again",
	})
}

// Crash handles POST /crash: immediate exit(1), no response. Simulates an
// abrupt fault rather than the gradual one trigger-failure produces.
func (h *HealthHandler) Crash(w http.ResponseWriter, r *http.Request) {
	h.Logger.Error("crash requested, exiting with code 1")
	h.exit(1)
}
