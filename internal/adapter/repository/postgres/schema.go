package postgres

import (
	"context"
	"fmt"
)

// Migrate creates the append-only event tables if they do not exist. Each
// table carries a monotonic seq column so reads can reproduce append order.
func (db *DB) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS remittance_ledger (
			seq           BIGSERIAL PRIMARY KEY,
			id            UUID NOT NULL UNIQUE,
			remittance_id TEXT NOT NULL,
			gate_id       TEXT NOT NULL,
			amount_cents  BIGINT NOT NULL,
			recorded_at   TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS scheduled_remittances (
			seq           BIGSERIAL PRIMARY KEY,
			id            UUID NOT NULL UNIQUE,
			remittance_id TEXT NOT NULL,
			gate_id       TEXT NOT NULL,
			payload       JSONB NOT NULL,
			scheduled_at  TIMESTAMPTZ NOT NULL,
			opens_at      TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS alert_events (
			seq           BIGSERIAL PRIMARY KEY,
			id            UUID NOT NULL UNIQUE,
			type          TEXT NOT NULL,
			gate_id       TEXT NOT NULL,
			remittance_id TEXT NOT NULL DEFAULT '',
			severity      TEXT NOT NULL,
			detail        TEXT NOT NULL DEFAULT '',
			metadata      JSONB NOT NULL DEFAULT '{}',
			emitted_at    TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS audit_events (
			seq         BIGSERIAL PRIMARY KEY,
			id          UUID NOT NULL UNIQUE,
			type        TEXT NOT NULL,
			gate_id     TEXT NOT NULL,
			actor_role  TEXT NOT NULL,
			reason      TEXT NOT NULL DEFAULT '',
			opens_at    TIMESTAMPTZ,
			metadata    JSONB NOT NULL DEFAULT '{}',
			recorded_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scheduled_remittances_gate ON scheduled_remittances (gate_id, opens_at)`,
		`CREATE INDEX IF NOT EXISTS idx_audit_events_gate ON audit_events (gate_id)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run schema migration: %w", err)
		}
	}
	return nil
}
