package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harborpoint/moneygate-backend/internal/domain"
)

// AuditLog is an in-memory append-only gate transition trail
type AuditLog struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

// NewAuditLog creates an empty in-memory audit log
func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

// Record appends an event, stamping id and timestamp when unset
func (l *AuditLog) Record(_ context.Context, event domain.AuditEvent) (domain.AuditEvent, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.RecordedAt.IsZero() {
		event.RecordedAt = time.Now()
	}
	event.Metadata = copyStringMap(event.Metadata)
	if event.OpensAt != nil {
		t := *event.OpensAt
		event.OpensAt = &t
	}
	l.events = append(l.events, event)
	return copyAudit(event), nil
}

// All returns a copy of every recorded event in append order
func (l *AuditLog) All(_ context.Context) ([]domain.AuditEvent, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.AuditEvent, 0, len(l.events))
	for _, event := range l.events {
		out = append(out, copyAudit(event))
	}
	return out, nil
}

// Count returns the number of recorded events
func (l *AuditLog) Count(_ context.Context) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events), nil
}

func copyAudit(event domain.AuditEvent) domain.AuditEvent {
	out := event
	out.Metadata = copyStringMap(event.Metadata)
	if event.OpensAt != nil {
		t := *event.OpensAt
		out.OpensAt = &t
	}
	return out
}
