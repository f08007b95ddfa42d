package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harborpoint/moneygate-backend/internal/domain"
)

// scheduledRemittanceRepository implements domain.ScheduledQueue
type scheduledRemittanceRepository struct {
	db *DB
}

// NewScheduledRemittanceRepository creates a new scheduled remittance repository
func NewScheduledRemittanceRepository(db *DB) domain.ScheduledQueue {
	return &scheduledRemittanceRepository{db: db}
}

// Enqueue appends a scheduled remittance, stamping id and timestamp when unset
func (r *scheduledRemittanceRepository) Enqueue(ctx context.Context, item domain.ScheduledRemittance) (domain.ScheduledRemittance, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.ScheduledAt.IsZero() {
		item.ScheduledAt = time.Now()
	}

	payload, err := json.Marshal(item.Payload)
	if err != nil {
		return domain.ScheduledRemittance{}, fmt.Errorf("failed to marshal remittance payload: %w", err)
	}

	query := `
		INSERT INTO scheduled_remittances (id, remittance_id, gate_id, payload, scheduled_at, opens_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = r.db.ExecContext(ctx, query,
		item.ID,
		item.RemittanceID,
		item.GateID,
		payload,
		item.ScheduledAt,
		item.OpensAt,
	)
	if err != nil {
		return domain.ScheduledRemittance{}, fmt.Errorf("failed to insert scheduled remittance: %w", err)
	}

	return item, nil
}

// All retrieves every scheduled remittance in append order
func (r *scheduledRemittanceRepository) All(ctx context.Context) ([]domain.ScheduledRemittance, error) {
	query := `
		SELECT id, remittance_id, gate_id, payload, scheduled_at, opens_at
		FROM scheduled_remittances
		ORDER BY seq
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduled remittances: %w", err)
	}
	defer rows.Close()

	var items []domain.ScheduledRemittance
	for rows.Next() {
		var item domain.ScheduledRemittance
		var payload []byte
		if err := rows.Scan(
			&item.ID,
			&item.RemittanceID,
			&item.GateID,
			&payload,
			&item.ScheduledAt,
			&item.OpensAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan scheduled remittance: %w", err)
		}
		if err := json.Unmarshal(payload, &item.Payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal remittance payload: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scheduled remittances: %w", err)
	}

	return items, nil
}

// Count returns the number of scheduled remittances
func (r *scheduledRemittanceRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scheduled_remittances`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count scheduled remittances: %w", err)
	}
	return count, nil
}
