package admission

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborpoint/moneygate-backend/internal/adapter/repository/memory"
	"github.com/harborpoint/moneygate-backend/internal/domain"
	"github.com/harborpoint/moneygate-backend/internal/usecase/gates"
)

// sequencePipeline replays a fixed list of verdicts, one per call
type sequencePipeline struct {
	verdicts []domain.AnomalyEvaluation
	calls    int
}

func (p *sequencePipeline) Evaluate(_ context.Context, _ domain.RemittanceRequest) (domain.AnomalyEvaluation, error) {
	if p.calls >= len(p.verdicts) {
		return domain.AnomalyEvaluation{Severity: domain.SeverityNone}, nil
	}
	v := p.verdicts[p.calls]
	p.calls++
	return v, nil
}

type fixture struct {
	service  *Service
	registry *gates.Registry
	ledger   *memory.Ledger
	queue    *memory.ScheduledQueue
	alerts   *memory.AlertBus
	audit    *memory.AuditLog
}

func newFixture(t *testing.T, pipeline domain.AnomalyPipeline, clock func() time.Time) *fixture {
	t.Helper()
	f := &fixture{
		registry: gates.NewRegistry(),
		ledger:   memory.NewLedger(),
		queue:    memory.NewScheduledQueue(),
		alerts:   memory.NewAlertBus(),
		audit:    memory.NewAuditLog(),
	}
	f.service = NewService(Deps{
		Gates:    f.registry,
		Ledger:   f.ledger,
		Queue:    f.queue,
		Alerts:   f.alerts,
		Audit:    f.audit,
		Pipeline: pipeline,
		Clock:    clock,
	})
	return f
}

func TestApply_CleanRequestIsRecorded(t *testing.T) {
	f := newFixture(t, &sequencePipeline{}, nil)
	ctx := context.Background()

	result, err := f.service.Apply(ctx, domain.RemittanceRequest{
		ID: "rem-1", GateID: "g1", AmountCents: 5000,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusApplied, result.Status)
	require.NotNil(t, result.LedgerEntry)
	assert.Equal(t, "rem-1", result.LedgerEntry.RemittanceID)
	assert.Equal(t, int64(5000), result.LedgerEntry.AmountCents)
	assert.Nil(t, result.Scheduled)

	count, err := f.ledger.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	queued, err := f.queue.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, queued)
}

func TestApply_HardAnomalyClosesGateAndSchedules(t *testing.T) {
	reopen := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	pipeline := &sequencePipeline{verdicts: []domain.AnomalyEvaluation{
		{Severity: domain.SeverityHard, Detail: "VELOCITY_BREACH", OpensAt: &reopen},
	}}
	f := newFixture(t, pipeline, nil)
	ctx := context.Background()

	result, err := f.service.Apply(ctx, domain.RemittanceRequest{
		ID: "rem-1", GateID: "g1", AmountCents: 9_000_000,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, result.Status)
	assert.Equal(t, domain.GateReasonAnomalyHard, result.GateReason)
	require.NotNil(t, result.Scheduled)
	assert.True(t, result.Scheduled.OpensAt.Equal(reopen))
	assert.Nil(t, result.LedgerEntry)

	gate := f.registry.GetState("g1")
	assert.Equal(t, domain.GateClosed, gate.Status)
	assert.True(t, gate.Locked, "hard closes carry the admin-override lock")

	alerts, err := f.alerts.All(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, domain.AlertTypeAnomalyHard, alerts[0].Type)
	assert.Equal(t, "rem-1", alerts[0].RemittanceID)
	assert.Equal(t, "VELOCITY_BREACH", alerts[0].Detail)

	audits, err := f.audit.All(ctx)
	require.NoError(t, err)
	require.Len(t, audits, 1)
	assert.Equal(t, domain.AuditTypeGateClosed, audits[0].Type)
	assert.Equal(t, domain.RoleSystem, audits[0].ActorRole)
	assert.Equal(t, "anomaly_pipeline", audits[0].Metadata["source"])
	assert.Equal(t, "VELOCITY_BREACH", audits[0].Metadata["detail"])

	ledgerCount, err := f.ledger.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, ledgerCount)
}

func TestApply_ClosedGateSchedulesCleanFollowUps(t *testing.T) {
	pipeline := &sequencePipeline{verdicts: []domain.AnomalyEvaluation{
		{Severity: domain.SeverityHard, Detail: "VELOCITY_BREACH"},
		{Severity: domain.SeverityNone},
	}}
	f := newFixture(t, pipeline, nil)
	ctx := context.Background()

	_, err := f.service.Apply(ctx, domain.RemittanceRequest{ID: "rem-1", GateID: "g1"})
	require.NoError(t, err)

	// clean verdict, but the gate is still closed
	result, err := f.service.Apply(ctx, domain.RemittanceRequest{ID: "rem-2", GateID: "g1"})
	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, result.Status)

	queued, err := f.queue.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, queued)

	// only the hard anomaly raised an alert
	alertCount, err := f.alerts.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, alertCount)
}

func TestApply_ReopenedGateAdmitsAgain(t *testing.T) {
	pipeline := &sequencePipeline{verdicts: []domain.AnomalyEvaluation{
		{Severity: domain.SeverityHard, Detail: "VELOCITY_BREACH"},
		{Severity: domain.SeverityNone},
	}}
	f := newFixture(t, pipeline, nil)
	ctx := context.Background()

	_, err := f.service.Apply(ctx, domain.RemittanceRequest{ID: "rem-1", GateID: "g1"})
	require.NoError(t, err)

	_, err = f.registry.Open("g1", domain.RoleAdminCompliance)
	require.NoError(t, err)

	result, err := f.service.Apply(ctx, domain.RemittanceRequest{ID: "rem-2", GateID: "g1", AmountCents: 100})
	require.NoError(t, err)
	assert.Equal(t, StatusApplied, result.Status)

	// the first request stays in the queue; reopening drains nothing
	queued, err := f.queue.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, queued)
	ledgerCount, err := f.ledger.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, ledgerCount)
}

func TestApply_OpensAtPrecedence(t *testing.T) {
	gateReopen := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	evalReopen := time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC)
	reqReopen := time.Date(2032, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("gate schedule wins", func(t *testing.T) {
		pipeline := &sequencePipeline{verdicts: []domain.AnomalyEvaluation{
			{Severity: domain.SeverityHard, OpensAt: &evalReopen},
		}}
		f := newFixture(t, pipeline, func() time.Time { return now })
		_, err := f.registry.Close("g1", gates.CloseOptions{
			Reason: "MANUAL", ActorRole: domain.RoleAdminCompliance, OpensAt: &gateReopen,
		})
		require.NoError(t, err)

		result, err := f.service.Apply(context.Background(), domain.RemittanceRequest{
			ID: "rem-1", GateID: "g1", OpensAt: &reqReopen,
		})
		require.NoError(t, err)
		require.NotNil(t, result.Scheduled)
		assert.True(t, result.Scheduled.OpensAt.Equal(gateReopen))
	})

	t.Run("evaluation beats request", func(t *testing.T) {
		pipeline := &sequencePipeline{verdicts: []domain.AnomalyEvaluation{
			{Severity: domain.SeverityHard, OpensAt: &evalReopen},
		}}
		f := newFixture(t, pipeline, func() time.Time { return now })

		result, err := f.service.Apply(context.Background(), domain.RemittanceRequest{
			ID: "rem-1", GateID: "g1", OpensAt: &reqReopen,
		})
		require.NoError(t, err)
		require.NotNil(t, result.Scheduled)
		assert.True(t, result.Scheduled.OpensAt.Equal(evalReopen))
	})

	t.Run("request hint when nothing else set", func(t *testing.T) {
		pipeline := &sequencePipeline{verdicts: []domain.AnomalyEvaluation{
			{Severity: domain.SeverityHard},
		}}
		f := newFixture(t, pipeline, func() time.Time { return now })

		result, err := f.service.Apply(context.Background(), domain.RemittanceRequest{
			ID: "rem-1", GateID: "g1", OpensAt: &reqReopen,
		})
		require.NoError(t, err)
		require.NotNil(t, result.Scheduled)
		assert.True(t, result.Scheduled.OpensAt.Equal(reqReopen))
	})

	t.Run("falls back to now", func(t *testing.T) {
		pipeline := &sequencePipeline{verdicts: []domain.AnomalyEvaluation{
			{Severity: domain.SeverityHard},
		}}
		f := newFixture(t, pipeline, func() time.Time { return now })

		result, err := f.service.Apply(context.Background(), domain.RemittanceRequest{
			ID: "rem-1", GateID: "g1",
		})
		require.NoError(t, err)
		require.NotNil(t, result.Scheduled)
		assert.True(t, result.Scheduled.OpensAt.Equal(now))
	})
}

func TestApply_SoftAnomalyDoesNotCloseGate(t *testing.T) {
	pipeline := &sequencePipeline{verdicts: []domain.AnomalyEvaluation{
		{Severity: domain.SeveritySoft, Detail: "UNUSUAL_HOUR"},
	}}
	f := newFixture(t, pipeline, nil)
	ctx := context.Background()

	result, err := f.service.Apply(ctx, domain.RemittanceRequest{ID: "rem-1", GateID: "g1", AmountCents: 100})
	require.NoError(t, err)
	assert.Equal(t, StatusApplied, result.Status)
	assert.Equal(t, domain.GateOpen, f.registry.GetState("g1").Status)

	alertCount, err := f.alerts.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, alertCount)
}

func TestApply_PipelineErrorPropagates(t *testing.T) {
	boom := errors.New("detector unavailable")
	pipeline := domain.AnomalyPipelineFunc(func(_ context.Context, _ domain.RemittanceRequest) (domain.AnomalyEvaluation, error) {
		return domain.AnomalyEvaluation{}, boom
	})
	f := newFixture(t, pipeline, nil)

	_, err := f.service.Apply(context.Background(), domain.RemittanceRequest{ID: "rem-1", GateID: "g1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestApply_EvaluationTimeoutDegradesToSoft(t *testing.T) {
	pipeline := domain.AnomalyPipelineFunc(func(ctx context.Context, _ domain.RemittanceRequest) (domain.AnomalyEvaluation, error) {
		<-ctx.Done()
		return domain.AnomalyEvaluation{}, ctx.Err()
	})
	f := newFixture(t, pipeline, nil)
	f.service.deps.EvaluationTimeout = 10 * time.Millisecond

	result, err := f.service.Apply(context.Background(), domain.RemittanceRequest{
		ID: "rem-1", GateID: "g1", AmountCents: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusApplied, result.Status, "an undetermined verdict admits through an open gate")
	assert.Equal(t, domain.GateOpen, f.registry.GetState("g1").Status)
}
