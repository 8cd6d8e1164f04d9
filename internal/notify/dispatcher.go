package notify

import (
	"context"

	"go.uber.org/zap"
)

type Dispatcher struct {
	sender Sender
	log    *zap.Logger
	queue  chan Event
}

func NewDispatcher(sender Sender, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sender.Send(context.Background(), ev); err != nil {
			d.log.Warn("notification send failed",
				zap.String("kind", ev.Kind),
				zap.Uint("booking_id", ev.BookingID),
				zap.Error(err),
			)
		}
	}
}

// Dispatch enqueues ev. A nil Dispatcher discards everything.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		// full queue: drop, never block a request on notifications
		d.log.Warn("notification queue full, dropping event",
			zap.String("kind", ev.Kind))
	}
}
