package notify

import (
	"context"
	"errors"

	"cloudstay/internal/logger"
)

// EventType names a notification the application can emit.
type EventType string

const (
	EventWelcome          EventType = "welcome"
	EventBookingConfirmed EventType = "booking_confirmed"
	EventRoomBooked       EventType = "room_booked"
)

// Event is a notification with the values its message template needs.
type Event struct {
	Type EventType
	Data map[string]string
}

// Recipient is who a notification is addressed to.
type Recipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Notifier delivers events to recipients.
type Notifier interface {
	Notify(ctx context.Context, event Event, to Recipient) error
}

// Noop discards every event.
type Noop struct{}

func (Noop) Notify(context.Context, Event, Recipient) error { return nil }

// Log writes the rendered message to the structured log instead of delivering it.
type Log struct{}

func (Log) Notify(ctx context.Context, event Event, to Recipient) error {
	msg := Render(event, to)
	logger.InfoContext(ctx, "notification",
		"event", string(event.Type),
		"to", to.Email,
		"subject", msg.Subject,
		"body", msg.Text,
	)
	return nil
}

// Multi fans an event out to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, event Event, to Recipient) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, event, to); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Send delivers through n and logs a failure instead of returning it.
// Notifications never fail the request that triggered them.
func Send(ctx context.Context, n Notifier, event Event, to Recipient) {
	if n == nil || to.Email == "" {
		return
	}
	if err := n.Notify(ctx, event, to); err != nil {
		logger.WarnContext(ctx, "notification failed",
			"event", string(event.Type),
			"to", to.Email,
			"error", err,
		)
	}
}
