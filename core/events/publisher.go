package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// Publisher announces committed ledger movements to other systems.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
	Close()
}

// Conn is the subset of *nats.Conn used for publishing.
type Conn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

// NatsPublisher publishes JSON payloads on <subject>.<eventType>.
type NatsPublisher struct {
	conn    Conn
	subject string
	logger  *zap.Logger
}

// New connects to NATS when cfg.URL is set and returns a no-op publisher otherwise.
func New(cfg Config, logger *zap.Logger) (Publisher, error) {
	if cfg.URL == "" {
		return Nop{}, nil
	}

	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Warn("Disconnected from NATS", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return NewNatsPublisher(nc, cfg.Subject, logger), nil
}

// NewNatsPublisher wraps an established connection.
func NewNatsPublisher(conn Conn, subject string, logger *zap.Logger) *NatsPublisher {
	return &NatsPublisher{conn: conn, subject: subject, logger: logger}
}

func (p *NatsPublisher) Publish(_ context.Context, eventType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := p.subject + "." + eventType
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}
	return nil
}

func (p *NatsPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.logger.Warn("Failed to drain NATS connection", zap.Error(err))
	}
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(context.Context, string, any) error { return nil }

func (Nop) Close() {}
