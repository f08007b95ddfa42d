package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/harborpoint/moneygate-backend/internal/domain"
)

// Publisher is the slice of the NATS connection the alert fan-out needs
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Config holds NATS connection settings
type Config struct {
	URL           string
	Subject       string
	Name          string
	ReconnectWait time.Duration
	MaxReconnects int
}

// Connect establishes a NATS connection with the given settings
func Connect(cfg Config) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.Name(cfg.Name),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.MaxReconnects(cfg.MaxReconnects),
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return conn, nil
}

// AlertPublisher decorates a domain.AlertBus, fanning every stored alert out
// to a NATS subject as JSON. The store is the source of truth; a publish
// failure is logged and never fails the admission decision.
type AlertPublisher struct {
	inner   domain.AlertBus
	pub     Publisher
	subject string
}

// NewAlertPublisher wraps the given alert bus with NATS fan-out
func NewAlertPublisher(inner domain.AlertBus, pub Publisher, subject string) *AlertPublisher {
	return &AlertPublisher{inner: inner, pub: pub, subject: subject}
}

// Emit stores the event, then publishes the stored copy
func (p *AlertPublisher) Emit(ctx context.Context, event domain.AlertEvent) (domain.AlertEvent, error) {
	stored, err := p.inner.Emit(ctx, event)
	if err != nil {
		return domain.AlertEvent{}, err
	}

	payload, err := json.Marshal(stored)
	if err != nil {
		log.Printf("[ERROR] marshal alert %s: %v", stored.ID, err)
		return stored, nil
	}
	if err := p.pub.Publish(p.subject, payload); err != nil {
		log.Printf("[ERROR] publish alert %s: %v", stored.ID, err)
	}
	return stored, nil
}

// All retrieves every alert event from the underlying store
func (p *AlertPublisher) All(ctx context.Context) ([]domain.AlertEvent, error) {
	return p.inner.All(ctx)
}

// Count returns the number of stored alert events
func (p *AlertPublisher) Count(ctx context.Context) (int, error) {
	return p.inner.Count(ctx)
}
