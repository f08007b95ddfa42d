package domain

import "context"

// The four sinks below are append-only sequence stores. Implementations copy
// the input, stamp an id and timestamp when absent, append, and return the
// stored copy. Reads return defensive copies. Entries are never mutated or
// removed by this module; retention and rotation belong to the storage owner.

// RemittanceLedger defines the interface for the append-only store of
// applied remittances
type RemittanceLedger interface {
	// Record appends one ledger entry and returns the stored copy
	Record(ctx context.Context, entry RemittanceLedgerEntry) (RemittanceLedgerEntry, error)

	// All retrieves every ledger entry in append order
	All(ctx context.Context) ([]RemittanceLedgerEntry, error)

	// Count returns the number of ledger entries
	Count(ctx context.Context) (int, error)
}

// ScheduledQueue defines the interface for the FIFO store of remittances
// deferred because their gate was closed at decision time
type ScheduledQueue interface {
	// Enqueue appends one scheduled remittance and returns the stored copy
	Enqueue(ctx context.Context, item ScheduledRemittance) (ScheduledRemittance, error)

	// All retrieves every scheduled remittance in append order
	All(ctx context.Context) ([]ScheduledRemittance, error)

	// Count returns the number of scheduled remittances
	Count(ctx context.Context) (int, error)
}

// AlertBus defines the interface for the append-only anomaly alert sink
type AlertBus interface {
	// Emit appends one alert event and returns the stored copy
	Emit(ctx context.Context, event AlertEvent) (AlertEvent, error)

	// All retrieves every alert event in append order
	All(ctx context.Context) ([]AlertEvent, error)

	// Count returns the number of alert events
	Count(ctx context.Context) (int, error)
}

// AuditLog defines the interface for the append-only gate transition trail
type AuditLog interface {
	// Record appends one audit event and returns the stored copy
	Record(ctx context.Context, event AuditEvent) (AuditEvent, error)

	// All retrieves every audit event in append order
	All(ctx context.Context) ([]AuditEvent, error)

	// Count returns the number of audit events
	Count(ctx context.Context) (int, error)
}
