// internal/handlers/listactivities/handler.go
package listactivities

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"mergington-activities/internal/common/errors"
	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/metrics"
	"mergington-activities/internal/registry"
)

const (
	HandlerName = "list-activities"
)

type Handler struct {
	config    *Config
	registry  *registry.Registry
	logger    logger.Logger
	responder *errors.Responder
}

func NewHandler(config *Config, reg *registry.Registry, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"handler": HandlerName})
	return &Handler{
		config:    config,
		registry:  reg,
		logger:    l,
		responder: errors.NewResponder(l),
	}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx)
	if err != nil {
		metrics.HTTPRequestsTotal.WithLabelValues(HandlerName, "error").Inc()
		h.responder.WriteError(w, r, err)
		return
	}

	metrics.HTTPRequestsTotal.WithLabelValues(HandlerName, "ok").Inc()
	metrics.HTTPRequestDuration.WithLabelValues(HandlerName).Observe(time.Since(start).Seconds())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(output.Activities); err != nil {
		h.logger.Error("failed to encode response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (h *Handler) execute(_ context.Context) (*Output, error) {
	snap := h.registry.List()

	for _, name := range snap.Names {
		metrics.ActivityParticipants.WithLabelValues(name).Set(float64(len(snap.Activities[name].Participants)))
	}

	return &Output{Activities: snap}, nil
}

// Execute exposes the core operation for tests.
func (h *Handler) Execute(ctx context.Context) (*Output, error) {
	return h.execute(ctx)
}
