package notify

import (
	"context"

	"go.uber.org/zap"
)

// Event is one lifecycle notification to the citizen. Delivery is
// fire-and-forget: a failed send never rolls back the state transition
// that produced it.
type Event struct {
	BookingID uint
	PublicRef string
	Kind      string // booking_received, booking_confirmed, ...
	Email     string
	Phone     string
}

// Sender is the delivery collaborator (email/SMS gateway).
type Sender interface {
	Send(ctx context.Context, ev Event) error
}

// LogSender is the default sender: it only records the event. Production
// deployments plug a real gateway behind the same interface.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, ev Event) error {
	s.log.Info("notification",
		zap.String("kind", ev.Kind),
		zap.Uint("booking_id", ev.BookingID),
		zap.String("email", ev.Email),
	)
	return nil
}
