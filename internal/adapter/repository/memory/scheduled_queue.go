package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harborpoint/moneygate-backend/internal/domain"
)

// ScheduledQueue is an in-memory FIFO store of deferred remittances
type ScheduledQueue struct {
	mu    sync.Mutex
	items []domain.ScheduledRemittance
}

// NewScheduledQueue creates an empty in-memory queue
func NewScheduledQueue() *ScheduledQueue {
	return &ScheduledQueue{}
}

// Enqueue appends an item, stamping id and ScheduledAt when unset
func (q *ScheduledQueue) Enqueue(_ context.Context, item domain.ScheduledRemittance) (domain.ScheduledRemittance, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.ScheduledAt.IsZero() {
		item.ScheduledAt = time.Now()
	}
	item.Payload.Metadata = copyStringMap(item.Payload.Metadata)
	q.items = append(q.items, item)
	return copyScheduled(item), nil
}

// All returns a copy of every queued item in append order
func (q *ScheduledQueue) All(_ context.Context) ([]domain.ScheduledRemittance, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]domain.ScheduledRemittance, 0, len(q.items))
	for _, item := range q.items {
		out = append(out, copyScheduled(item))
	}
	return out, nil
}

// Count returns the number of queued items
func (q *ScheduledQueue) Count(_ context.Context) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items), nil
}

func copyScheduled(item domain.ScheduledRemittance) domain.ScheduledRemittance {
	out := item
	out.Payload.Metadata = copyStringMap(item.Payload.Metadata)
	if item.Payload.OpensAt != nil {
		t := *item.Payload.OpensAt
		out.Payload.OpensAt = &t
	}
	return out
}
