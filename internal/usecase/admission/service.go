package admission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harborpoint/moneygate-backend/internal/domain"
	"github.com/harborpoint/moneygate-backend/internal/usecase/gates"
)

// Status is the outcome of one admission decision
type Status string

const (
	StatusApplied   Status = "applied"
	StatusScheduled Status = "scheduled"
)

// Result describes how a remittance request was routed
type Result struct {
	Status      Status
	GateReason  string
	Scheduled   *domain.ScheduledRemittance
	LedgerEntry *domain.RemittanceLedgerEntry
}

// Deps are the collaborators the admission service orchestrates
type Deps struct {
	Gates    *gates.Registry
	Ledger   domain.RemittanceLedger
	Queue    domain.ScheduledQueue
	Alerts   domain.AlertBus
	Audit    domain.AuditLog
	Pipeline domain.AnomalyPipeline

	// Clock is injectable for tests; defaults to time.Now
	Clock func() time.Time

	// EvaluationTimeout bounds the anomaly pipeline call. Zero disables the
	// bound and a stalled pipeline stalls the decision for that gate.
	EvaluationTimeout time.Duration
}

// Service is the admission-control engine: it consumes remittance requests,
// asks the anomaly pipeline to classify them, updates gate state, and routes
// each request to the ledger or the scheduled queue.
//
// A request scheduled while its gate is closed is NOT retried when the gate
// reopens. Re-submission is an external worker's responsibility; callers
// must not assume scheduled items self-heal.
type Service struct {
	deps  Deps
	locks keyedLocks
}

// NewService creates a new admission service
func NewService(deps Deps) *Service {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	return &Service{deps: deps}
}

// Apply runs one admission decision.
//
// The whole decision (evaluate, conditionally close, re-read, append) is a
// critical section per gate id. Two concurrent requests on the same gate are
// serialized so the second sees the gate state the first left behind;
// requests on different gates proceed in parallel.
func (s *Service) Apply(ctx context.Context, req domain.RemittanceRequest) (Result, error) {
	unlock := s.locks.lock(req.GateID)
	defer unlock()

	eval, err := s.evaluate(ctx, req)
	if err != nil {
		return Result{}, err
	}

	if eval.Severity == domain.SeverityHard {
		closed, err := s.deps.Gates.Close(req.GateID, gates.CloseOptions{
			Reason:               domain.GateReasonAnomalyHard,
			ActorRole:            domain.RoleSystem,
			OpensAt:              eval.OpensAt,
			RequireAdminOverride: true,
		})
		if err != nil {
			return Result{}, err
		}

		if _, err := s.deps.Alerts.Emit(ctx, domain.AlertEvent{
			Type:         domain.AlertTypeAnomalyHard,
			GateID:       req.GateID,
			RemittanceID: req.ID,
			Severity:     domain.SeverityHard,
			Detail:       eval.Detail,
			Metadata:     eval.Metadata,
		}); err != nil {
			return Result{}, fmt.Errorf("emit anomaly alert: %w", err)
		}

		if _, err := s.deps.Audit.Record(ctx, domain.AuditEvent{
			Type:      domain.AuditTypeGateClosed,
			GateID:    req.GateID,
			ActorRole: domain.RoleSystem,
			Reason:    domain.GateReasonAnomalyHard,
			OpensAt:   closed.OpensAt,
			Metadata:  map[string]string{"source": "anomaly_pipeline", "detail": eval.Detail},
		}); err != nil {
			return Result{}, fmt.Errorf("record gate close audit: %w", err)
		}
	}

	// Re-read: the gate may have been closed by a prior request or manual
	// action, independent of this evaluation.
	gate := s.deps.Gates.GetState(req.GateID)

	if gate.Status == domain.GateClosed {
		scheduled, err := s.deps.Queue.Enqueue(ctx, domain.ScheduledRemittance{
			RemittanceID: req.ID,
			GateID:       req.GateID,
			Payload:      req,
			OpensAt:      s.resolveOpensAt(gate, eval, req),
		})
		if err != nil {
			return Result{}, fmt.Errorf("enqueue scheduled remittance: %w", err)
		}
		return Result{
			Status:     StatusScheduled,
			GateReason: gate.Reason,
			Scheduled:  &scheduled,
		}, nil
	}

	entry, err := s.deps.Ledger.Record(ctx, domain.RemittanceLedgerEntry{
		RemittanceID: req.ID,
		GateID:       req.GateID,
		AmountCents:  req.AmountCents,
	})
	if err != nil {
		return Result{}, fmt.Errorf("record ledger entry: %w", err)
	}
	return Result{
		Status:      StatusApplied,
		GateReason:  gate.Reason,
		LedgerEntry: &entry,
	}, nil
}

// evaluate calls the anomaly pipeline under the configured bound. A deadline
// expiry degrades to an undetermined SOFT verdict so a stalled detector
// cannot wedge the gate's critical section; any other pipeline failure
// propagates.
func (s *Service) evaluate(ctx context.Context, req domain.RemittanceRequest) (domain.AnomalyEvaluation, error) {
	if s.deps.EvaluationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.deps.EvaluationTimeout)
		defer cancel()
	}

	eval, err := s.deps.Pipeline.Evaluate(ctx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.AnomalyEvaluation{
				Severity: domain.SeveritySoft,
				Detail:   "EVALUATION_TIMEOUT",
			}, nil
		}
		return domain.AnomalyEvaluation{}, fmt.Errorf("anomaly pipeline: %w", err)
	}
	return eval, nil
}

// resolveOpensAt picks the reopen hint for a scheduled remittance. The gate's
// own schedule wins, then the evaluation's, then the request's; with no hint
// at all the item is due immediately.
func (s *Service) resolveOpensAt(gate domain.Gate, eval domain.AnomalyEvaluation, req domain.RemittanceRequest) time.Time {
	switch {
	case gate.OpensAt != nil:
		return *gate.OpensAt
	case eval.OpensAt != nil:
		return *eval.OpensAt
	case req.OpensAt != nil:
		return *req.OpensAt
	}
	return s.deps.Clock()
}
