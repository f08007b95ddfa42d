package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harborpoint/moneygate-backend/internal/domain"
)

// alertEventRepository implements domain.AlertBus
type alertEventRepository struct {
	db *DB
}

// NewAlertEventRepository creates a new alert event repository
func NewAlertEventRepository(db *DB) domain.AlertBus {
	return &alertEventRepository{db: db}
}

// Emit appends an alert event, stamping id and timestamp when unset
func (r *alertEventRepository) Emit(ctx context.Context, event domain.AlertEvent) (domain.AlertEvent, error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.EmittedAt.IsZero() {
		event.EmittedAt = time.Now()
	}

	metadata, err := marshalMetadata(event.Metadata)
	if err != nil {
		return domain.AlertEvent{}, fmt.Errorf("failed to marshal alert metadata: %w", err)
	}

	query := `
		INSERT INTO alert_events (id, type, gate_id, remittance_id, severity, detail, metadata, emitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = r.db.ExecContext(ctx, query,
		event.ID,
		event.Type,
		event.GateID,
		event.RemittanceID,
		string(event.Severity),
		event.Detail,
		metadata,
		event.EmittedAt,
	)
	if err != nil {
		return domain.AlertEvent{}, fmt.Errorf("failed to insert alert event: %w", err)
	}

	return event, nil
}

// All retrieves every alert event in append order
func (r *alertEventRepository) All(ctx context.Context) ([]domain.AlertEvent, error) {
	query := `
		SELECT id, type, gate_id, remittance_id, severity, detail, metadata, emitted_at
		FROM alert_events
		ORDER BY seq
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query alert events: %w", err)
	}
	defer rows.Close()

	var events []domain.AlertEvent
	for rows.Next() {
		var event domain.AlertEvent
		var severity string
		var metadata []byte
		if err := rows.Scan(
			&event.ID,
			&event.Type,
			&event.GateID,
			&event.RemittanceID,
			&severity,
			&event.Detail,
			&metadata,
			&event.EmittedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan alert event: %w", err)
		}
		event.Severity = domain.AnomalySeverity(severity)
		if event.Metadata, err = unmarshalMetadata(metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal alert metadata: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate alert events: %w", err)
	}

	return events, nil
}

// Count returns the number of alert events
func (r *alertEventRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM alert_events`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count alert events: %w", err)
	}
	return count, nil
}

func marshalMetadata(metadata map[string]string) ([]byte, error) {
	if metadata == nil {
		metadata = map[string]string{}
	}
	return json.Marshal(metadata)
}

func unmarshalMetadata(raw []byte) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var metadata map[string]string
	if err := json.Unmarshal(raw, &metadata); err != nil {
		return nil, err
	}
	if len(metadata) == 0 {
		return nil, nil
	}
	return metadata, nil
}
