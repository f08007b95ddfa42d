package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harborpoint/moneygate-backend/internal/domain"
)

// AlertBus is an in-memory append-only alert sink
type AlertBus struct {
	mu     sync.Mutex
	events []domain.AlertEvent
}

// NewAlertBus creates an empty in-memory alert bus
func NewAlertBus() *AlertBus {
	return &AlertBus{}
}

// Emit appends an event, stamping id and timestamp when unset
func (b *AlertBus) Emit(_ context.Context, event domain.AlertEvent) (domain.AlertEvent, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.EmittedAt.IsZero() {
		event.EmittedAt = time.Now()
	}
	event.Metadata = copyStringMap(event.Metadata)
	b.events = append(b.events, event)

	out := event
	out.Metadata = copyStringMap(event.Metadata)
	return out, nil
}

// All returns a copy of every emitted event in append order
func (b *AlertBus) All(_ context.Context) ([]domain.AlertEvent, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]domain.AlertEvent, 0, len(b.events))
	for _, event := range b.events {
		event.Metadata = copyStringMap(event.Metadata)
		out = append(out, event)
	}
	return out, nil
}

// Count returns the number of emitted events
func (b *AlertBus) Count(_ context.Context) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events), nil
}

func copyStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
