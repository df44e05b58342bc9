package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"sredemo/internal/core/health"
)

// endpointDocs is the static endpoint map served by GET /.
var endpointDocs = map[string]string{
	"/":                "this info endpoint",
	"/health":          "health check endpoint",
	"/todos":           "todo CRUD resource",
	"/trigger-failure": "POST to enter failure mode",
	"/remediate":       "POST to clear failure state",
	"/crash":           "POST to terminate the process",
	"/metrics":         "prometheus exposition",
}

type InfoHandler struct {
	State        *health.State
	ForceHealthy func() bool
	InstanceID   uuid.UUID
}

func NewInfoHandler(state *health.State, forceHealthy func() bool, instanceID uuid.UUID) *InfoHandler {
	return &InfoHandler{State: state, ForceHealthy: forceHealthy, InstanceID: instanceID}
}

// Info handles GET /: service metadata plus the currently reported status.
// The instance ID is fresh per boot, so dashboards can tell restarts apart.
func (h *InfoHandler) Info(w http.ResponseWriter, r *http.Request) {
	report := h.State.Evaluate(r.Context())

	respondJSON(w, http.StatusOK, map[string]any{
		"service":       "sredemo",
		"description":   "demo service for automated remediation exercises",
		"endpoints":     endpointDocs,
		"status":        report.Status,
		"force_healthy": strconv.FormatBool(h.ForceHealthy()),
		"instance_id":   h.InstanceID.String(),
	})
}
