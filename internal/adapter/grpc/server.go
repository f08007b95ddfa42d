package grpc

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	moneygatev1 "github.com/harborpoint/moneygate-backend/internal/adapter/grpc/moneygate/v1"
	"github.com/harborpoint/moneygate-backend/internal/domain"
	"github.com/harborpoint/moneygate-backend/internal/usecase/admission"
	"github.com/harborpoint/moneygate-backend/internal/usecase/allocator"
	"github.com/harborpoint/moneygate-backend/internal/usecase/gates"
)

// Server implements the MoneyGateService gRPC server
type Server struct {
	moneygatev1.UnimplementedMoneyGateServiceServer

	AdmissionService *admission.Service
	GateRegistry     *gates.Registry
	AuditLog         domain.AuditLog
}

// NewServer creates a new gRPC server instance
func NewServer(
	admissionService *admission.Service,
	gateRegistry *gates.Registry,
	auditLog domain.AuditLog,
) *Server {
	return &Server{
		AdmissionService: admissionService,
		GateRegistry:     gateRegistry,
		AuditLog:         auditLog,
	}
}

// ApplyRemittance handles the ApplyRemittance RPC
func (s *Server) ApplyRemittance(ctx context.Context, req *moneygatev1.ApplyRemittanceRequest) (*moneygatev1.ApplyRemittanceResponse, error) {
	if req.RemittanceId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "remittance_id is required")
	}
	if req.GateId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "gate_id is required")
	}

	input := domain.RemittanceRequest{
		ID:          req.RemittanceId,
		GateID:      req.GateId,
		AmountCents: req.AmountCents,
		OpensAt:     timeFromProto(req.OpensAt),
		Metadata:    req.Metadata,
	}

	result, err := s.AdmissionService.Apply(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &moneygatev1.ApplyRemittanceResponse{
		Status:     string(result.Status),
		GateReason: result.GateReason,
	}
	if result.LedgerEntry != nil {
		resp.LedgerEntryId = result.LedgerEntry.ID.String()
		resp.RecordedAt = timestamppb.New(result.LedgerEntry.RecordedAt)
	}
	if result.Scheduled != nil {
		resp.ScheduledId = result.Scheduled.ID.String()
		resp.OpensAt = timestamppb.New(result.Scheduled.OpensAt)
	}
	return resp, nil
}

// PreviewAllocation handles the PreviewAllocation RPC
func (s *Server) PreviewAllocation(ctx context.Context, req *moneygatev1.PreviewAllocationRequest) (*moneygatev1.PreviewAllocationResponse, error) {
	if req.Line == nil {
		return nil, status.Errorf(codes.InvalidArgument, "line is required")
	}

	line := domain.BankLine{
		ID:             req.Line.Id,
		AvailableCents: req.Line.AvailableCents,
		Gate:           domain.GateStatus(req.Line.Gate).OrOpen(),
	}
	if err := line.Validate(); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s", err.Error())
	}

	ruleset := domain.PolicyRuleset{
		Rules: make([]domain.PolicyBucketRule, 0, len(req.Rules)),
	}
	for _, rule := range req.Rules {
		ruleset.Rules = append(ruleset.Rules, domain.PolicyBucketRule{
			BucketID: rule.BucketId,
			Corridor: domain.Corridor{
				MinBps: rule.MinBps,
				MaxBps: rule.MaxBps,
			},
			CounterpartyAllow: rule.CounterpartyAllow,
			CounterpartyDeny:  rule.CounterpartyDeny,
			Gate:              domain.GateStatus(rule.Gate).OrOpen(),
		})
	}
	if err := ruleset.Validate(); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s", err.Error())
	}

	accounts := make([]domain.AccountState, 0, len(req.Accounts))
	for _, account := range req.Accounts {
		accounts = append(accounts, domain.AccountState{
			AccountID:      account.AccountId,
			BucketID:       account.BucketId,
			RequestedCents: account.RequestedCents,
			CounterpartyID: account.CounterpartyId,
			Gate:           domain.GateStatus(account.Gate).OrOpen(),
		})
	}

	result, err := allocator.ApplyPolicy(line, ruleset, accounts)
	if err != nil {
		return nil, mapError(err)
	}

	allocations := make([]*moneygatev1.Allocation, 0, len(result.Allocations))
	for _, alloc := range result.Allocations {
		allocations = append(allocations, &moneygatev1.Allocation{
			AccountId:      alloc.AccountID,
			BucketId:       alloc.BucketID,
			AllocatedCents: alloc.AllocatedCents,
		})
	}

	return &moneygatev1.PreviewAllocationResponse{
		Allocations: allocations,
		PolicyHash:  result.PolicyHash,
		Explain:     result.Explain,
	}, nil
}

// CloseGate handles the CloseGate RPC
func (s *Server) CloseGate(ctx context.Context, req *moneygatev1.CloseGateRequest) (*moneygatev1.GateResponse, error) {
	if req.GateId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "gate_id is required")
	}

	role := domain.ActorRole(req.ActorRole)
	gate, err := s.GateRegistry.Close(req.GateId, gates.CloseOptions{
		Reason:               req.Reason,
		ActorRole:            role,
		OpensAt:              timeFromProto(req.OpensAt),
		RequireAdminOverride: req.RequireAdminOverride,
	})
	if err != nil {
		return nil, mapError(err)
	}

	if _, err := s.AuditLog.Record(ctx, domain.AuditEvent{
		Type:      domain.AuditTypeGateClosed,
		GateID:    gate.ID,
		ActorRole: role,
		Reason:    req.Reason,
		OpensAt:   gate.OpensAt,
		Metadata:  map[string]string{"source": "manual"},
	}); err != nil {
		return nil, mapError(err)
	}

	return &moneygatev1.GateResponse{Gate: gateToProto(gate)}, nil
}

// OpenGate handles the OpenGate RPC
func (s *Server) OpenGate(ctx context.Context, req *moneygatev1.OpenGateRequest) (*moneygatev1.GateResponse, error) {
	if req.GateId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "gate_id is required")
	}

	role := domain.ActorRole(req.ActorRole)
	gate, err := s.GateRegistry.Open(req.GateId, role)
	if err != nil {
		return nil, mapError(err)
	}

	if _, err := s.AuditLog.Record(ctx, domain.AuditEvent{
		Type:      domain.AuditTypeGateOpened,
		GateID:    gate.ID,
		ActorRole: role,
		Metadata:  map[string]string{"source": "manual"},
	}); err != nil {
		return nil, mapError(err)
	}

	return &moneygatev1.GateResponse{Gate: gateToProto(gate)}, nil
}

// SetGateOpensAt handles the SetGateOpensAt RPC
func (s *Server) SetGateOpensAt(ctx context.Context, req *moneygatev1.SetGateOpensAtRequest) (*moneygatev1.GateResponse, error) {
	if req.GateId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "gate_id is required")
	}

	role := domain.ActorRole(req.ActorRole)
	gate, err := s.GateRegistry.SetOpensAt(req.GateId, timeFromProto(req.OpensAt))
	if err != nil {
		return nil, mapError(err)
	}

	if _, err := s.AuditLog.Record(ctx, domain.AuditEvent{
		Type:      domain.AuditTypeGateRescheduled,
		GateID:    gate.ID,
		ActorRole: role,
		OpensAt:   gate.OpensAt,
		Metadata:  map[string]string{"source": "manual"},
	}); err != nil {
		return nil, mapError(err)
	}

	return &moneygatev1.GateResponse{Gate: gateToProto(gate)}, nil
}

// GetGate handles the GetGate RPC
func (s *Server) GetGate(ctx context.Context, req *moneygatev1.GetGateRequest) (*moneygatev1.GateResponse, error) {
	if req.GateId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "gate_id is required")
	}
	gate := s.GateRegistry.GetState(req.GateId)
	return &moneygatev1.GateResponse{Gate: gateToProto(gate)}, nil
}

// ListGates handles the ListGates RPC
func (s *Server) ListGates(ctx context.Context, req *moneygatev1.ListGatesRequest) (*moneygatev1.ListGatesResponse, error) {
	snapshot := s.GateRegistry.Snapshot()
	protoGates := make([]*moneygatev1.Gate, 0, len(snapshot))
	for _, gate := range snapshot {
		protoGates = append(protoGates, gateToProto(gate))
	}
	return &moneygatev1.ListGatesResponse{Gates: protoGates}, nil
}

// gateToProto converts a domain Gate to a proto Gate message
func gateToProto(gate domain.Gate) *moneygatev1.Gate {
	protoGate := &moneygatev1.Gate{
		Id:        gate.ID,
		Status:    string(gate.Status),
		Reason:    gate.Reason,
		Locked:    gate.Locked,
		UpdatedAt: timestamppb.New(gate.UpdatedAt),
	}
	if gate.OpensAt != nil {
		protoGate.OpensAt = timestamppb.New(*gate.OpensAt)
	}
	return protoGate
}

// timeFromProto converts an optional proto timestamp to a *time.Time
func timeFromProto(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrPermissionDenied):
		return status.Errorf(codes.PermissionDenied, "%s", err.Error())
	case errors.Is(err, domain.ErrMissingBucketRule):
		return status.Errorf(codes.FailedPrecondition, "%s", err.Error())
	case errors.Is(err, domain.ErrDivisionByZero):
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", err.Error())
}
