package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"cloudstay/internal/logger"
)

// SubjectNotifySend is the subject notification events are published on.
const SubjectNotifySend = "notify.send"

// NotificationEvent is the payload published for downstream delivery workers.
type NotificationEvent struct {
	Type      string            `json:"type"`
	Recipient string            `json:"recipient"`
	Name      string            `json:"name,omitempty"`
	Subject   string            `json:"subject"`
	Template  string            `json:"template"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data,omitempty"`
}

type publisher interface {
	Publish(subject string, data []byte) error
}

// NATS publishes notification events for an external delivery worker.
type NATS struct {
	conn    publisher
	close   func()
	subject string
}

// NewNATS connects to the NATS server at url.
func NewNATS(url string) (*NATS, error) {
	conn, err := nats.Connect(url, nats.Name("cloudstay"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATS{conn: conn, close: conn.Close, subject: SubjectNotifySend}, nil
}

func (n *NATS) Notify(ctx context.Context, event Event, to Recipient) error {
	msg := Render(event, to)
	payload, err := json.Marshal(NotificationEvent{
		Type:      string(event.Type),
		Recipient: to.Email,
		Name:      to.Name,
		Subject:   msg.Subject,
		Template:  string(event.Type),
		Body:      msg.Text,
		Data:      event.Data,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	logger.DebugContext(ctx, "publishing event", "subject", n.subject, "type", string(event.Type))
	return n.conn.Publish(n.subject, payload)
}

// Close drops the connection.
func (n *NATS) Close() error {
	if n.close != nil {
		n.close()
	}
	return nil
}
