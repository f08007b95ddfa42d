package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harborpoint/moneygate-backend/internal/domain"
)

// Ledger is an in-memory append-only remittance ledger
type Ledger struct {
	mu      sync.Mutex
	entries []domain.RemittanceLedgerEntry
}

// NewLedger creates an empty in-memory ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// Record appends an entry, stamping id and timestamp when unset
func (l *Ledger) Record(_ context.Context, entry domain.RemittanceLedgerEntry) (domain.RemittanceLedgerEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}
	l.entries = append(l.entries, entry)
	return entry, nil
}

// All returns a copy of every recorded entry in append order
func (l *Ledger) All(_ context.Context) ([]domain.RemittanceLedgerEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.RemittanceLedgerEntry, len(l.entries))
	copy(out, l.entries)
	return out, nil
}

// Count returns the number of recorded entries
func (l *Ledger) Count(_ context.Context) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries), nil
}
