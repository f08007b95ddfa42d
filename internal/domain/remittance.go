package domain

import (
	"time"

	"github.com/google/uuid"
)

// RemittanceRequest is the unit of admission-control decision-making
type RemittanceRequest struct {
	ID          string            `json:"id"`
	GateID      string            `json:"gateId"`
	AmountCents int64             `json:"amountCents"`
	OpensAt     *time.Time        `json:"opensAt,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// RemittanceLedgerEntry records one admitted remittance. Append-only.
type RemittanceLedgerEntry struct {
	ID           uuid.UUID `json:"id"`
	RemittanceID string    `json:"remittanceId"`
	GateID       string    `json:"gateId"`
	AmountCents  int64     `json:"amountCents"`
	RecordedAt   time.Time `json:"recordedAt"`
}

// ScheduledRemittance records one remittance deferred because its gate was
// closed at decision time. Append-only; nothing in this module re-admits a
// scheduled remittance when the gate later reopens. Re-submission is an
// external worker's responsibility.
type ScheduledRemittance struct {
	ID           uuid.UUID         `json:"id"`
	RemittanceID string            `json:"remittanceId"`
	GateID       string            `json:"gateId"`
	Payload      RemittanceRequest `json:"payload"`
	ScheduledAt  time.Time         `json:"scheduledAt"`
	OpensAt      time.Time         `json:"opensAt"`
}
