//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	moneygatev1 "github.com/harborpoint/moneygate-backend/internal/adapter/grpc/moneygate/v1"
)

var (
	grpcClient moneygatev1.MoneyGateServiceClient
	grpcConn   *grpc.ClientConn
)

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	grpcAddr := getGRPCAddress()
	var err error
	grpcConn, err = grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to gRPC server: %v", err))
	}
	defer grpcConn.Close()

	grpcClient = moneygatev1.NewMoneyGateServiceClient(grpcConn)

	code := m.Run()
	os.Exit(code)
}

// getAuthContext returns a context with authorization metadata
func getAuthContext() context.Context {
	md := metadata.New(map[string]string{
		"authorization": getAPIToken(),
	})
	return metadata.NewOutgoingContext(context.Background(), md)
}

func getAPIToken() string {
	token := os.Getenv("MONEYGATE_API_TOKEN")
	if token == "" {
		token = "dev-token"
	}
	return token
}

// getGRPCAddress returns the gRPC server address from environment or defaults
func getGRPCAddress() string {
	addr := os.Getenv("GRPC_ADDRESS")
	if addr == "" {
		addr = "localhost:50051"
	}
	return addr
}

// newGateID returns a fresh gate id so tests do not interfere with each other
func newGateID() string {
	return "it-gate-" + uuid.NewString()
}

// TestAdmissionFlow tests the complete flow: admit, close, schedule, reopen, admit
func TestAdmissionFlow(t *testing.T) {
	ctx := getAuthContext()
	gateID := newGateID()

	// Step A: a clean remittance through an open gate is applied
	applyResp, err := grpcClient.ApplyRemittance(ctx, &moneygatev1.ApplyRemittanceRequest{
		RemittanceId: "it-rem-" + uuid.NewString(),
		GateId:       gateID,
		AmountCents:  2500,
	})
	require.NoError(t, err, "ApplyRemittance should succeed")
	assert.Equal(t, "applied", applyResp.Status)
	assert.NotEmpty(t, applyResp.LedgerEntryId, "Ledger entry ID should be returned")

	// Step B: close the gate manually
	closeResp, err := grpcClient.CloseGate(ctx, &moneygatev1.CloseGateRequest{
		GateId:    gateID,
		Reason:    "MANUAL_REVIEW",
		ActorRole: "admin_compliance",
	})
	require.NoError(t, err, "CloseGate should succeed")
	assert.Equal(t, "CLOSED", closeResp.Gate.Status)
	assert.Equal(t, "MANUAL_REVIEW", closeResp.Gate.Reason)

	// Step C: a remittance against the closed gate is scheduled, not applied
	scheduledResp, err := grpcClient.ApplyRemittance(ctx, &moneygatev1.ApplyRemittanceRequest{
		RemittanceId: "it-rem-" + uuid.NewString(),
		GateId:       gateID,
		AmountCents:  100,
	})
	require.NoError(t, err, "ApplyRemittance should succeed")
	assert.Equal(t, "scheduled", scheduledResp.Status)
	assert.Equal(t, "MANUAL_REVIEW", scheduledResp.GateReason)
	assert.NotEmpty(t, scheduledResp.ScheduledId, "Scheduled ID should be returned")
	assert.Empty(t, scheduledResp.LedgerEntryId)

	// Step D: reopen and admit again
	openResp, err := grpcClient.OpenGate(ctx, &moneygatev1.OpenGateRequest{
		GateId:    gateID,
		ActorRole: "admin_compliance",
	})
	require.NoError(t, err, "OpenGate should succeed")
	assert.Equal(t, "OPEN", openResp.Gate.Status)
	assert.Empty(t, openResp.Gate.Reason)

	reappliedResp, err := grpcClient.ApplyRemittance(ctx, &moneygatev1.ApplyRemittanceRequest{
		RemittanceId: "it-rem-" + uuid.NewString(),
		GateId:       gateID,
		AmountCents:  100,
	})
	require.NoError(t, err, "ApplyRemittance should succeed")
	assert.Equal(t, "applied", reappliedResp.Status)
}

// TestGateAdministration tests manual gate state management
func TestGateAdministration(t *testing.T) {
	ctx := getAuthContext()
	gateID := newGateID()

	// An unseen gate reads as OPEN
	getResp, err := grpcClient.GetGate(ctx, &moneygatev1.GetGateRequest{GateId: gateID})
	require.NoError(t, err, "GetGate should succeed")
	assert.Equal(t, "OPEN", getResp.Gate.Status)
	assert.False(t, getResp.Gate.Locked)

	// Close with the admin-override lock
	reopen := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	closeResp, err := grpcClient.CloseGate(ctx, &moneygatev1.CloseGateRequest{
		GateId:               gateID,
		Reason:               "SANCTIONS_HOLD",
		ActorRole:            "admin_compliance",
		OpensAt:              timestamppb.New(reopen),
		RequireAdminOverride: true,
	})
	require.NoError(t, err, "CloseGate should succeed")
	assert.True(t, closeResp.Gate.Locked)
	require.NotNil(t, closeResp.Gate.OpensAt)
	assert.Equal(t, reopen.Unix(), closeResp.Gate.OpensAt.AsTime().Unix())

	// A non-admin cannot open the locked gate
	_, err = grpcClient.OpenGate(ctx, &moneygatev1.OpenGateRequest{
		GateId:    gateID,
		ActorRole: "ops_agent",
	})
	require.Error(t, err, "OpenGate by non-admin on a locked gate should fail")
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	// Reschedule the reopen time
	newReopen := reopen.Add(24 * time.Hour)
	rescheduleResp, err := grpcClient.SetGateOpensAt(ctx, &moneygatev1.SetGateOpensAtRequest{
		GateId:    gateID,
		ActorRole: "admin_compliance",
		OpensAt:   timestamppb.New(newReopen),
	})
	require.NoError(t, err, "SetGateOpensAt should succeed")
	require.NotNil(t, rescheduleResp.Gate.OpensAt)
	assert.Equal(t, newReopen.Unix(), rescheduleResp.Gate.OpensAt.AsTime().Unix())
	assert.Equal(t, "CLOSED", rescheduleResp.Gate.Status, "Rescheduling should not change status")

	// admin_compliance clears the lock
	openResp, err := grpcClient.OpenGate(ctx, &moneygatev1.OpenGateRequest{
		GateId:    gateID,
		ActorRole: "admin_compliance",
	})
	require.NoError(t, err, "OpenGate by admin should succeed")
	assert.Equal(t, "OPEN", openResp.Gate.Status)
	assert.False(t, openResp.Gate.Locked)
	assert.Nil(t, openResp.Gate.OpensAt)

	// The gate appears in the listing
	listResp, err := grpcClient.ListGates(ctx, &moneygatev1.ListGatesRequest{})
	require.NoError(t, err, "ListGates should succeed")
	var found bool
	for _, gate := range listResp.Gates {
		if gate.Id == gateID {
			found = true
			break
		}
	}
	assert.True(t, found, "Gate should appear in ListGates")
}

// TestPreviewAllocation tests the corridor allocation RPC
func TestPreviewAllocation(t *testing.T) {
	ctx := getAuthContext()

	resp, err := grpcClient.PreviewAllocation(ctx, &moneygatev1.PreviewAllocationRequest{
		Line: &moneygatev1.BankLine{
			Id:             "line-1",
			AvailableCents: 1000,
			Gate:           "OPEN",
		},
		Rules: []*moneygatev1.PolicyRule{
			{BucketId: "alpha", MinBps: 1000, MaxBps: 2000},
			{BucketId: "beta", MinBps: 0, MaxBps: 10000},
		},
		Accounts: []*moneygatev1.AccountState{
			{AccountId: "acct-1", BucketId: "alpha", RequestedCents: 500},
			{AccountId: "acct-2", BucketId: "beta", RequestedCents: 800},
		},
	})
	require.NoError(t, err, "PreviewAllocation should succeed")
	require.Len(t, resp.Allocations, 2)
	assert.NotEmpty(t, resp.PolicyHash)
	assert.NotEmpty(t, resp.Explain)

	var total int64
	for _, alloc := range resp.Allocations {
		total += alloc.AllocatedCents
		assert.GreaterOrEqual(t, alloc.AllocatedCents, int64(0))
	}
	assert.LessOrEqual(t, total, int64(1000), "Allocations never exceed available funds")
}

// TestNegativeScenarios tests error handling for invalid inputs
func TestNegativeScenarios(t *testing.T) {
	ctx := getAuthContext()

	t.Run("MissingGateId", func(t *testing.T) {
		_, err := grpcClient.ApplyRemittance(ctx, &moneygatev1.ApplyRemittanceRequest{
			RemittanceId: "it-rem-" + uuid.NewString(),
		})
		require.Error(t, err, "ApplyRemittance without gate_id should return an error")
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("UnauthorizedOverrideClose", func(t *testing.T) {
		_, err := grpcClient.CloseGate(ctx, &moneygatev1.CloseGateRequest{
			GateId:               newGateID(),
			Reason:               "MANUAL",
			ActorRole:            "ops_agent",
			RequireAdminOverride: true,
		})
		require.Error(t, err, "Only authorized roles may request the override lock")
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("InvalidCorridor", func(t *testing.T) {
		_, err := grpcClient.PreviewAllocation(ctx, &moneygatev1.PreviewAllocationRequest{
			Line: &moneygatev1.BankLine{Id: "line-1", AvailableCents: 1000},
			Rules: []*moneygatev1.PolicyRule{
				{BucketId: "alpha", MinBps: -1, MaxBps: 2000},
			},
		})
		require.Error(t, err, "Negative corridor bounds should be rejected")
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("BadToken", func(t *testing.T) {
		badCtx := metadata.NewOutgoingContext(context.Background(),
			metadata.Pairs("authorization", "wrong-token"))
		_, err := grpcClient.GetGate(badCtx, &moneygatev1.GetGateRequest{GateId: newGateID()})
		require.Error(t, err, "A bad token should be rejected")
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})
}
