// internal/handlers/signup/handler.go
package signup

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"mergington-activities/internal/common/errors"
	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/metrics"
	"mergington-activities/internal/notifications"
	"mergington-activities/internal/registry"
)

const (
	HandlerName = "signup"

	// notifyTimeout bounds the fire-and-forget confirmation send; it must
	// not inherit the request context, which is gone once we respond.
	notifyTimeout = 10 * time.Second
)

type Handler struct {
	config    *Config
	registry  *registry.Registry
	notifier  notifications.Notifier
	logger    logger.Logger
	responder *errors.Responder
}

func NewHandler(config *Config, reg *registry.Registry, notifier notifications.Notifier, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"handler": HandlerName})
	return &Handler{
		config:    config,
		registry:  reg,
		notifier:  notifier,
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
		metrics.SignupsTotal.WithLabelValues(input.ActivityName, "rejected").Inc()
		h.responder.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, input)
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(input.ActivityName, "rejected").Inc()
		h.responder.WriteError(w, r, err)
		return
	}

	metrics.SignupsTotal.WithLabelValues(input.ActivityName, "success").Inc()
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
	message, err := h.registry.Signup(input.ActivityName, input.Email)
	if err != nil {
		return nil, err
	}

	metrics.ActivityParticipants.WithLabelValues(input.ActivityName).
		Set(float64(h.registry.ParticipantCount(input.ActivityName)))

	h.logger.Info("participant signed up", map[string]interface{}{
		"activity": input.ActivityName,
		"email":    input.Email,
	})

	go h.notify(input.ActivityName, input.Email)

	return &Output{Message: message}, nil
}

func (h *Handler) notify(activityName, email string) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := h.notifier.SignupConfirmation(ctx, activityName, email); err != nil {
		h.logger.Warn("signup confirmation not delivered", map[string]interface{}{
			"activity": activityName,
			"email":    email,
			"error":    err.Error(),
		})
	}
}

// Execute exposes the core operation for tests.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
