package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harborpoint/moneygate-backend/internal/domain"
)

// auditEventRepository implements domain.AuditLog
type auditEventRepository struct {
	db *DB
}

// NewAuditEventRepository creates a new audit event repository
func NewAuditEventRepository(db *DB) domain.AuditLog {
	return &auditEventRepository{db: db}
}

// Record appends an audit event, stamping id and timestamp when unset
func (r *auditEventRepository) Record(ctx context.Context, event domain.AuditEvent) (domain.AuditEvent, error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.RecordedAt.IsZero() {
		event.RecordedAt = time.Now()
	}

	metadata, err := marshalMetadata(event.Metadata)
	if err != nil {
		return domain.AuditEvent{}, fmt.Errorf("failed to marshal audit metadata: %w", err)
	}

	query := `
		INSERT INTO audit_events (id, type, gate_id, actor_role, reason, opens_at, metadata, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = r.db.ExecContext(ctx, query,
		event.ID,
		event.Type,
		event.GateID,
		string(event.ActorRole),
		event.Reason,
		event.OpensAt,
		metadata,
		event.RecordedAt,
	)
	if err != nil {
		return domain.AuditEvent{}, fmt.Errorf("failed to insert audit event: %w", err)
	}

	return event, nil
}

// All retrieves every audit event in append order
func (r *auditEventRepository) All(ctx context.Context) ([]domain.AuditEvent, error) {
	query := `
		SELECT id, type, gate_id, actor_role, reason, opens_at, metadata, recorded_at
		FROM audit_events
		ORDER BY seq
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit events: %w", err)
	}
	defer rows.Close()

	var events []domain.AuditEvent
	for rows.Next() {
		var event domain.AuditEvent
		var actorRole string
		var opensAt sql.NullTime
		var metadata []byte
		if err := rows.Scan(
			&event.ID,
			&event.Type,
			&event.GateID,
			&actorRole,
			&event.Reason,
			&opensAt,
			&metadata,
			&event.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit event: %w", err)
		}
		event.ActorRole = domain.ActorRole(actorRole)
		if opensAt.Valid {
			t := opensAt.Time
			event.OpensAt = &t
		}
		var err error
		if event.Metadata, err = unmarshalMetadata(metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal audit metadata: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate audit events: %w", err)
	}

	return events, nil
}

// Count returns the number of audit events
func (r *auditEventRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_events`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count audit events: %w", err)
	}
	return count, nil
}
