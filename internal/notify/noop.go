package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier logs and discards alerts. It is used when no backend is
// configured.
type NoOpNotifier struct {
	log *slog.Logger
}

var _ Notifier = (*NoOpNotifier)(nil)

// NewNoOpNotifier creates a notifier that discards alerts.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendOfferAlert logs and discards a single alert.
func (n *NoOpNotifier) SendOfferAlert(_ context.Context, alert *OfferAlert) error {
	n.log.Debug("notification discarded (no backend configured)",
		"item", alert.ItemName,
		"method", alert.Method,
		"offer", alert.OfferPrice,
	)
	return nil
}
