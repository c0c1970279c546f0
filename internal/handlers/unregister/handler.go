// internal/handlers/unregister/handler.go
package unregister

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
	HandlerName = "unregister"
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

	input := &Input{
		ActivityName: r.PathValue("activity_name"),
		Email:        r.URL.Query().Get("email"),
	}
	if err := validateInput(input); err != nil {
		metrics.UnregistersTotal.WithLabelValues(input.ActivityName, "rejected").Inc()
		h.responder.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, input)
	if err != nil {
		metrics.UnregistersTotal.WithLabelValues(input.ActivityName, "rejected").Inc()
		h.responder.WriteError(w, r, err)
		return
	}

	metrics.UnregistersTotal.WithLabelValues(input.ActivityName, "success").Inc()
	metrics.HTTPRequestsTotal.WithLabelValues(HandlerName, "ok").Inc()
	metrics.HTTPRequestDuration.WithLabelValues(HandlerName).Observe(time.Since(start).Seconds())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(output); err != nil {
		h.logger.Error("failed to encode response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	message, err := h.registry.Unregister(input.ActivityName, input.Email)
	if err != nil {
		return nil, err
	}

	metrics.ActivityParticipants.WithLabelValues(input.ActivityName).
		Set(float64(h.registry.ParticipantCount(input.ActivityName)))

	h.logger.Info("participant removed", map[string]interface{}{
		"activity": input.ActivityName,
		"email":    input.Email,
	})

	return &Output{Message: message}, nil
}

// Execute exposes the core operation for tests.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
