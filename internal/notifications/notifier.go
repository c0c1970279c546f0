// internal/notifications/notifier.go
package notifications

import (
	"context"

	"mergington-activities/internal/common/config"
	"mergington-activities/internal/common/logger"
)

// Notifier delivers signup confirmations. Delivery failures are the
// notifier's problem; they are logged and never surfaced to the caller.
type Notifier interface {
	SignupConfirmation(ctx context.Context, activityName, email string) error
}

// NoopNotifier is the default when notifications are disabled.
type NoopNotifier struct{}

func (NoopNotifier) SignupConfirmation(context.Context, string, string) error {
	return nil
}

// New returns the configured notifier, or a no-op when disabled.
func New(cfg config.NotificationConfig, log logger.Logger) (Notifier, error) {
	if !cfg.Enabled {
		return NoopNotifier{}, nil
	}
	return NewAWSNotifier(cfg, log)
}
