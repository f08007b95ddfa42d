package domain

import (
	"time"

	"github.com/google/uuid"
)

// Alert event types
const (
	AlertTypeAnomalyHard = "ANOMALY_HARD"
)

// Audit event types
const (
	AuditTypeGateClosed      = "GATE_CLOSED"
	AuditTypeGateOpened      = "GATE_OPENED"
	AuditTypeGateRescheduled = "GATE_RESCHEDULED"
)

// AlertEvent is an immutable record of an anomaly alert. Append-only.
type AlertEvent struct {
	ID           uuid.UUID         `json:"id"`
	Type         string            `json:"type"`
	GateID       string            `json:"gateId"`
	RemittanceID string            `json:"remittanceId,omitempty"`
	Severity     AnomalySeverity   `json:"severity"`
	Detail       string            `json:"detail,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	EmittedAt    time.Time         `json:"emittedAt"`
}

// AuditEvent is an immutable record of a gate transition, the compliance
// trail for every open/close. Append-only.
type AuditEvent struct {
	ID         uuid.UUID         `json:"id"`
	Type       string            `json:"type"`
	GateID     string            `json:"gateId"`
	ActorRole  ActorRole         `json:"actorRole"`
	Reason     string            `json:"reason,omitempty"`
	OpensAt    *time.Time        `json:"opensAt,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	RecordedAt time.Time         `json:"recordedAt"`
}
