package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborpoint/moneygate-backend/internal/domain"
)

func TestLedger_StampsAndPreserves(t *testing.T) {
	ledger := NewLedger()
	ctx := context.Background()

	stored, err := ledger.Record(ctx, domain.RemittanceLedgerEntry{
		RemittanceID: "rem-1",
		GateID:       "g1",
		AmountCents:  2500,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, stored.ID)
	assert.False(t, stored.RecordedAt.IsZero())

	preset := domain.RemittanceLedgerEntry{
		ID:           uuid.New(),
		RemittanceID: "rem-2",
		GateID:       "g1",
		AmountCents:  100,
		RecordedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	stored2, err := ledger.Record(ctx, preset)
	require.NoError(t, err)
	assert.Equal(t, preset, stored2, "preset id and timestamp are preserved")

	all, err := ledger.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "rem-1", all[0].RemittanceID)
	assert.Equal(t, "rem-2", all[1].RemittanceID)

	count, err := ledger.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestScheduledQueue_FIFOAndCopies(t *testing.T) {
	queue := NewScheduledQueue()
	ctx := context.Background()

	meta := map[string]string{"channel": "wire"}
	stored, err := queue.Enqueue(ctx, domain.ScheduledRemittance{
		RemittanceID: "rem-1",
		GateID:       "g1",
		Payload: domain.RemittanceRequest{
			ID:       "rem-1",
			GateID:   "g1",
			Metadata: meta,
		},
		OpensAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, stored.ID)
	assert.False(t, stored.ScheduledAt.IsZero())

	// mutating the caller's map does not reach the stored item
	meta["channel"] = "tampered"
	all, err := queue.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "wire", all[0].Payload.Metadata["channel"])

	// mutating a read copy does not reach the store either
	all[0].Payload.Metadata["channel"] = "tampered"
	fresh, err := queue.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, "wire", fresh[0].Payload.Metadata["channel"])

	_, err = queue.Enqueue(ctx, domain.ScheduledRemittance{RemittanceID: "rem-2", GateID: "g1"})
	require.NoError(t, err)
	ordered, err := queue.All(ctx)
	require.NoError(t, err)
	require.Len(t, ordered, 2)
	assert.Equal(t, "rem-1", ordered[0].RemittanceID)
	assert.Equal(t, "rem-2", ordered[1].RemittanceID)
}

func TestAlertBus_AppendOnly(t *testing.T) {
	bus := NewAlertBus()
	ctx := context.Background()

	stored, err := bus.Emit(ctx, domain.AlertEvent{
		Type:     domain.AlertTypeAnomalyHard,
		GateID:   "g1",
		Severity: domain.SeverityHard,
		Metadata: map[string]string{"rule": "velocity"},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, stored.ID)
	assert.False(t, stored.EmittedAt.IsZero())

	stored.Metadata["rule"] = "tampered"
	all, err := bus.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "velocity", all[0].Metadata["rule"])
}

func TestAuditLog_CopiesOpensAt(t *testing.T) {
	log := NewAuditLog()
	ctx := context.Background()
	reopen := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	stored, err := log.Record(ctx, domain.AuditEvent{
		Type:      domain.AuditTypeGateClosed,
		GateID:    "g1",
		ActorRole: domain.RoleSystem,
		Reason:    domain.GateReasonAnomalyHard,
		OpensAt:   &reopen,
	})
	require.NoError(t, err)
	require.NotNil(t, stored.OpensAt)

	*stored.OpensAt = stored.OpensAt.Add(48 * time.Hour)
	all, err := log.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].OpensAt.Equal(reopen))
}
