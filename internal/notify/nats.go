package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"appealsapi/internal/config"
)

// EventStatusChanged is the envelope type of a status change event.
const EventStatusChanged = "appeals.representation.status_changed"

// EventEnvelope wraps every event published to the stream.
type EventEnvelope struct {
	Type          string       `json:"type"`
	Version       string       `json:"version"`
	OccurredAt    time.Time    `json:"occurredAt"`
	CorrelationID string       `json:"correlationId"`
	Payload       Notification `json:"payload"`
}

// publisher is the part of nats.JetStreamContext the dispatcher uses.
type publisher interface {
	Publish(subj string, data []byte, opts ...nats.PubOpt) (*nats.PubAck, error)
}

// JetStream publishes notifications to a JetStream subject.
type JetStream struct {
	nc      *nats.Conn
	js      publisher
	subject string
	now     func() time.Time
}

// New connects to NATS when a URL is configured and falls back to the no-op
// dispatcher when it is not or the connection cannot be set up.
func New(cfg config.NATSConfig, logger *zap.Logger) Dispatcher {
	if cfg.URL == "" {
		logger.Info("notifications disabled, no NATS url configured")
		return NewNoop()
	}

	nc, err := nats.Connect(cfg.URL, nats.Name("appealsapi"))
	if err != nil {
		logger.Warn("NATS connect failed, using noop dispatcher", zap.Error(err))
		return NewNoop()
	}

	js, err := nc.JetStream()
	if err != nil {
		logger.Warn("NATS JetStream context creation failed, using noop dispatcher", zap.Error(err))
		nc.Close()
		return NewNoop()
	}

	if err := ensureStream(js, cfg.Stream, cfg.Subject); err != nil {
		logger.Warn("NATS stream initialization failed, using noop dispatcher", zap.Error(err))
		nc.Close()
		return NewNoop()
	}

	logger.Info("notifications enabled", zap.String("stream", cfg.Stream), zap.String("subject", cfg.Subject))
	d := newJetStream(js, cfg.Subject)
	d.nc = nc
	return d
}

func newJetStream(js publisher, subject string) *JetStream {
	return &JetStream{js: js, subject: subject, now: time.Now}
}

func ensureStream(js nats.JetStreamContext, name, subject string) error {
	_, err := js.StreamInfo(name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, nats.ErrStreamNotFound) {
		return err
	}
	_, err = js.AddStream(&nats.StreamConfig{
		Name:       name,
		Subjects:   []string{subject},
		Retention:  nats.LimitsPolicy,
		MaxAge:     7 * 24 * time.Hour,
		Discard:    nats.DiscardOld,
		Storage:    nats.FileStorage,
		Duplicates: 2 * time.Minute,
	})
	if err != nil {
		return fmt.Errorf("create stream %s: %w", name, err)
	}
	return nil
}

// Notify publishes n. The message id is derived from the representation and
// status so a retried request inside the stream's duplicate window is
// dropped by the server.
func (d *JetStream) Notify(ctx context.Context, n Notification) error {
	if err := n.validate(); err != nil {
		return err
	}

	b, err := json.Marshal(EventEnvelope{
		Type:          EventStatusChanged,
		Version:       "1.0.0",
		OccurredAt:    d.now().UTC(),
		CorrelationID: uuid.NewString(),
		Payload:       n,
	})
	if err != nil {
		return err
	}

	msgID := fmt.Sprintf("rep-%d-%s", n.RepresentationID, n.Status)
	if _, err := d.js.Publish(d.subject, b, nats.MsgId(msgID), nats.Context(ctx)); err != nil {
		return fmt.Errorf("publish %s: %w", msgID, err)
	}
	return nil
}

// Close closes the NATS connection.
func (d *JetStream) Close() error {
	if d.nc != nil {
		d.nc.Close()
	}
	return nil
}
