package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harborpoint/moneygate-backend/internal/domain"
)

// remittanceLedgerRepository implements domain.RemittanceLedger
type remittanceLedgerRepository struct {
	db *DB
}

// NewRemittanceLedgerRepository creates a new remittance ledger repository
func NewRemittanceLedgerRepository(db *DB) domain.RemittanceLedger {
	return &remittanceLedgerRepository{db: db}
}

// Record appends a ledger entry, stamping id and timestamp when unset
func (r *remittanceLedgerRepository) Record(ctx context.Context, entry domain.RemittanceLedgerEntry) (domain.RemittanceLedgerEntry, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}

	query := `
		INSERT INTO remittance_ledger (id, remittance_id, gate_id, amount_cents, recorded_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.RemittanceID,
		entry.GateID,
		entry.AmountCents,
		entry.RecordedAt,
	)
	if err != nil {
		return domain.RemittanceLedgerEntry{}, fmt.Errorf("failed to insert ledger entry: %w", err)
	}

	return entry, nil
}

// All retrieves every ledger entry in append order
func (r *remittanceLedgerRepository) All(ctx context.Context) ([]domain.RemittanceLedgerEntry, error) {
	query := `
		SELECT id, remittance_id, gate_id, amount_cents, recorded_at
		FROM remittance_ledger
		ORDER BY seq
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.RemittanceLedgerEntry
	for rows.Next() {
		var entry domain.RemittanceLedgerEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.RemittanceID,
			&entry.GateID,
			&entry.AmountCents,
			&entry.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger entries: %w", err)
	}

	return entries, nil
}

// Count returns the number of ledger entries
func (r *remittanceLedgerRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM remittance_ledger`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count ledger entries: %w", err)
	}
	return count, nil
}
