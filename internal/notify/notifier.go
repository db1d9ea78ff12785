// Package notify delivers best-effort notifications about captured leads.
// Delivery is fire-and-forget: a failing sink never fails the request that
// produced the event.
package notify

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Event types, one per record kind.
const (
	EventVolunteer  = "volunteer"
	EventYardSign   = "yard-sign"
	EventDonation   = "donation"
	EventNewsletter = "newsletter"
)

// Event is one typed notification about a captured record.
type Event struct {
	ID      string
	Type    string
	Payload map[string]any
}

// Notifier receives events. Implementations must not block the caller on
// delivery problems; errors are for the sink's own logging.
type Notifier interface {
	Publish(ctx context.Context, event Event)
}

// NewEvent assigns a fresh event id.
func NewEvent(eventType string, payload map[string]any) Event {
	return Event{ID: uuid.NewString(), Type: eventType, Payload: payload}
}

// LogNotifier writes events to the service log. It stands in for an outbound
// email or webhook integration.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier constructs a log-backed sink.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Publish logs the event.
func (n *LogNotifier) Publish(_ context.Context, event Event) {
	n.log.Info().
		Str("event_id", event.ID).
		Str("event_type", event.Type).
		Fields(map[string]any{"payload": event.Payload}).
		Msg("campaign notification")
}
