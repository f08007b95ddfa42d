package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborpoint/moneygate-backend/internal/domain"
)

func openLine(available int64) domain.BankLine {
	return domain.BankLine{ID: "ln-1", AvailableCents: available, Gate: domain.GateOpen}
}

func singleBucketRuleset(bucketID string, minBps, maxBps int64) domain.PolicyRuleset {
	return domain.PolicyRuleset{Rules: []domain.PolicyBucketRule{
		{BucketID: bucketID, Corridor: domain.Corridor{MinBps: minBps, MaxBps: maxBps}},
	}}
}

func totalAllocated(allocations []domain.Allocation) int64 {
	total := int64(0)
	for _, a := range allocations {
		total += a.AllocatedCents
	}
	return total
}

func allocationFor(t *testing.T, allocations []domain.Allocation, accountID string) int64 {
	t.Helper()
	for _, a := range allocations {
		if a.AccountID == accountID {
			return a.AllocatedCents
		}
	}
	t.Fatalf("no allocation record for account %q", accountID)
	return 0
}

func TestApplyPolicy_RoundingResidueGoesToLastAccount(t *testing.T) {
	// Three accounts requesting 100, 100, 101 against a bucket allocation of
	// 301 must split exactly 100/100/101: no account overpaid, the last
	// account by id absorbs the residue.
	accounts := []domain.AccountState{
		{AccountID: "acct-1", BucketID: "main", RequestedCents: 100},
		{AccountID: "acct-2", BucketID: "main", RequestedCents: 100},
		{AccountID: "acct-3", BucketID: "main", RequestedCents: 101},
	}

	result, err := ApplyPolicy(openLine(301), singleBucketRuleset("main", 0, 10000), accounts)
	require.NoError(t, err)

	assert.Equal(t, int64(100), allocationFor(t, result.Allocations, "acct-1"))
	assert.Equal(t, int64(100), allocationFor(t, result.Allocations, "acct-2"))
	assert.Equal(t, int64(101), allocationFor(t, result.Allocations, "acct-3"))
	assert.Equal(t, int64(301), totalAllocated(result.Allocations))
}

func TestApplyPolicy_Conservation(t *testing.T) {
	ruleset := domain.PolicyRuleset{Rules: []domain.PolicyBucketRule{
		{BucketID: "ops", Corridor: domain.Corridor{MinBps: 1000, MaxBps: 6000}},
		{BucketID: "tax", Corridor: domain.Corridor{MinBps: 0, MaxBps: 5000}},
	}}
	accounts := []domain.AccountState{
		{AccountID: "a-1", BucketID: "ops", RequestedCents: 700},
		{AccountID: "a-2", BucketID: "ops", RequestedCents: 333},
		{AccountID: "a-3", BucketID: "tax", RequestedCents: 250},
		{AccountID: "a-4", BucketID: "tax", RequestedCents: -50}, // clamped to 0
	}

	for _, available := range []int64{0, 1, 99, 500, 1000, 1283, 100000} {
		result, err := ApplyPolicy(openLine(available), ruleset, accounts)
		require.NoError(t, err)

		total := totalAllocated(result.Allocations)
		assert.LessOrEqual(t, total, available, "available=%d", available)
		assert.LessOrEqual(t, total, int64(700+333+250), "available=%d", available)
		for _, alloc := range result.Allocations {
			assert.GreaterOrEqual(t, alloc.AllocatedCents, int64(0))
		}
		assert.Equal(t, int64(0), allocationFor(t, result.Allocations, "a-4"),
			"negative request clamps to zero")
		assert.Len(t, result.Allocations, len(accounts), "every account appears in the output")
	}
}

func TestApplyPolicy_CorridorBoundsRespected(t *testing.T) {
	// alpha wants 500 but its corridor caps it at 300; the excess-reduction
	// pass then pulls it back to its 200 minimum before touching beta.
	ruleset := domain.PolicyRuleset{Rules: []domain.PolicyBucketRule{
		{BucketID: "alpha", Corridor: domain.Corridor{MinBps: 2000, MaxBps: 3000}},
		{BucketID: "beta", Corridor: domain.Corridor{MinBps: 0, MaxBps: 10000}},
	}}
	accounts := []domain.AccountState{
		{AccountID: "a-alpha", BucketID: "alpha", RequestedCents: 500},
		{AccountID: "a-beta", BucketID: "beta", RequestedCents: 1000},
	}

	result, err := ApplyPolicy(openLine(1000), ruleset, accounts)
	require.NoError(t, err)

	assert.Equal(t, int64(200), allocationFor(t, result.Allocations, "a-alpha"),
		"alpha reduced to its min bound first")
	assert.Equal(t, int64(800), allocationFor(t, result.Allocations, "a-beta"))
	assert.Equal(t, int64(1000), totalAllocated(result.Allocations))
}

func TestApplyPolicy_ExcessReductionFollowsBucketOrder(t *testing.T) {
	// Both buckets are over; reduction empties "a" (no min corridor) before
	// touching "b".
	ruleset := domain.PolicyRuleset{Rules: []domain.PolicyBucketRule{
		{BucketID: "a", Corridor: domain.Corridor{MinBps: 0, MaxBps: 10000}},
		{BucketID: "b", Corridor: domain.Corridor{MinBps: 5000, MaxBps: 10000}},
	}}
	accounts := []domain.AccountState{
		{AccountID: "acct-a", BucketID: "a", RequestedCents: 100},
		{AccountID: "acct-b", BucketID: "b", RequestedCents: 100},
	}

	result, err := ApplyPolicy(openLine(100), ruleset, accounts)
	require.NoError(t, err)

	assert.Equal(t, int64(0), allocationFor(t, result.Allocations, "acct-a"))
	assert.Equal(t, int64(100), allocationFor(t, result.Allocations, "acct-b"))
}

func TestApplyPolicy_CorridorCapsLeaveLeftover(t *testing.T) {
	// Corridors cap both buckets below demand; the surplus stays unallocated
	// and the explain trace reports it.
	ruleset := domain.PolicyRuleset{Rules: []domain.PolicyBucketRule{
		{BucketID: "a", Corridor: domain.Corridor{MinBps: 0, MaxBps: 1000}},
		{BucketID: "b", Corridor: domain.Corridor{MinBps: 0, MaxBps: 2000}},
	}}
	accounts := []domain.AccountState{
		{AccountID: "acct-a", BucketID: "a", RequestedCents: 500},
		{AccountID: "acct-b", BucketID: "b", RequestedCents: 150},
	}

	result, err := ApplyPolicy(openLine(1000), ruleset, accounts)
	require.NoError(t, err)

	assert.Equal(t, int64(100), allocationFor(t, result.Allocations, "acct-a"))
	assert.Equal(t, int64(150), allocationFor(t, result.Allocations, "acct-b"))
	assert.Contains(t, result.Explain, "leftover=750")
}

func TestApplyPolicy_DegenerateCorridorStaysBounded(t *testing.T) {
	// MinBps above MaxBps is not rejected here; the initial allocation is
	// capped at the max bound and the leftover pass tops the bucket back up
	// toward its min, never past its demand.
	result, err := ApplyPolicy(openLine(1000), singleBucketRuleset("weird", 5000, 1000), []domain.AccountState{
		{AccountID: "acct-1", BucketID: "weird", RequestedCents: 600},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(500), allocationFor(t, result.Allocations, "acct-1"))
	assert.LessOrEqual(t, totalAllocated(result.Allocations), int64(1000))
}

func TestApplyPolicy_ZeroGateShortCircuit(t *testing.T) {
	ruleset := singleBucketRuleset("main", 0, 10000)
	accounts := []domain.AccountState{
		{AccountID: "acct-1", BucketID: "main", RequestedCents: 100},
		{AccountID: "acct-2", BucketID: "main", RequestedCents: 200},
	}

	closed, err := ApplyPolicy(domain.BankLine{ID: "ln-1", AvailableCents: 500, Gate: domain.GateClosed}, ruleset, accounts)
	require.NoError(t, err)
	assert.Len(t, closed.Allocations, 2)
	assert.Equal(t, int64(0), totalAllocated(closed.Allocations))
	assert.Contains(t, closed.Explain, "gate=CLOSED")

	empty, err := ApplyPolicy(openLine(0), ruleset, accounts)
	require.NoError(t, err)
	assert.Len(t, empty.Allocations, 2)
	assert.Equal(t, int64(0), totalAllocated(empty.Allocations))
	assert.Contains(t, empty.Explain, "available=0")
}

func TestApplyPolicy_EligibilityFilters(t *testing.T) {
	ruleset := domain.PolicyRuleset{Rules: []domain.PolicyBucketRule{
		{
			BucketID:          "main",
			Corridor:          domain.Corridor{MinBps: 0, MaxBps: 10000},
			CounterpartyAllow: []string{"cp-good"},
			CounterpartyDeny:  []string{"cp-bad"},
		},
		{BucketID: "shut", Corridor: domain.Corridor{MinBps: 0, MaxBps: 10000}, Gate: domain.GateClosed},
	}}
	accounts := []domain.AccountState{
		{AccountID: "acct-1", BucketID: "main", RequestedCents: 100, CounterpartyID: "cp-good"},
		{AccountID: "acct-2", BucketID: "main", RequestedCents: 100, CounterpartyID: "cp-bad"},
		{AccountID: "acct-3", BucketID: "main", RequestedCents: 100, CounterpartyID: "cp-other"},
		{AccountID: "acct-4", BucketID: "main", RequestedCents: 100, CounterpartyID: "cp-good", Gate: domain.GateClosed},
		{AccountID: "acct-5", BucketID: "shut", RequestedCents: 100, CounterpartyID: "cp-good"},
	}

	result, err := ApplyPolicy(openLine(500), ruleset, accounts)
	require.NoError(t, err)

	assert.Equal(t, int64(100), allocationFor(t, result.Allocations, "acct-1"))
	assert.Equal(t, int64(0), allocationFor(t, result.Allocations, "acct-2"), "denied counterparty")
	assert.Equal(t, int64(0), allocationFor(t, result.Allocations, "acct-3"), "not on allow list")
	assert.Equal(t, int64(0), allocationFor(t, result.Allocations, "acct-4"), "account gate closed")
	assert.Equal(t, int64(0), allocationFor(t, result.Allocations, "acct-5"), "bucket gate closed")
	assert.Len(t, result.Allocations, 5, "ineligible accounts still present at zero")
}

func TestApplyPolicy_MissingBucketRuleFailsFast(t *testing.T) {
	_, err := ApplyPolicy(openLine(100), singleBucketRuleset("main", 0, 10000), []domain.AccountState{
		{AccountID: "acct-1", BucketID: "orphan", RequestedCents: 100},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingBucketRule)
	assert.Contains(t, err.Error(), "orphan")
}

func TestApplyPolicy_Deterministic(t *testing.T) {
	ruleset := domain.PolicyRuleset{Rules: []domain.PolicyBucketRule{
		{BucketID: "zeta", Corridor: domain.Corridor{MinBps: 500, MaxBps: 4000}},
		{BucketID: "alpha", Corridor: domain.Corridor{MinBps: 1000, MaxBps: 7000}, CounterpartyDeny: []string{"cp-x"}},
	}}
	accounts := []domain.AccountState{
		{AccountID: "acct-3", BucketID: "zeta", RequestedCents: 777, CounterpartyID: "cp-1"},
		{AccountID: "acct-1", BucketID: "alpha", RequestedCents: 421, CounterpartyID: "cp-2"},
		{AccountID: "acct-2", BucketID: "alpha", RequestedCents: 333, CounterpartyID: "cp-x"},
	}

	first, err := ApplyPolicy(openLine(997), ruleset, accounts)
	require.NoError(t, err)
	second, err := ApplyPolicy(openLine(997), ruleset, accounts)
	require.NoError(t, err)

	assert.Equal(t, first.Allocations, second.Allocations)
	assert.Equal(t, first.PolicyHash, second.PolicyHash)
	assert.Equal(t, first.Explain, second.Explain)
}

func TestApplyPolicy_NegativeAvailableClampedToZero(t *testing.T) {
	result, err := ApplyPolicy(domain.BankLine{ID: "ln-1", AvailableCents: -500}, singleBucketRuleset("main", 0, 10000), []domain.AccountState{
		{AccountID: "acct-1", BucketID: "main", RequestedCents: 100},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), totalAllocated(result.Allocations))
}

func TestApplyPolicy_ProportionalSplitWithinBucket(t *testing.T) {
	// 60/40 demand against a capped bucket keeps the proportion and conserves
	// the bucket total.
	accounts := []domain.AccountState{
		{AccountID: "acct-1", BucketID: "main", RequestedCents: 600},
		{AccountID: "acct-2", BucketID: "main", RequestedCents: 400},
	}

	result, err := ApplyPolicy(openLine(1000), singleBucketRuleset("main", 0, 5000), accounts)
	require.NoError(t, err)

	// Bucket capped at 500 by the corridor: 300/200 split.
	assert.Equal(t, int64(300), allocationFor(t, result.Allocations, "acct-1"))
	assert.Equal(t, int64(200), allocationFor(t, result.Allocations, "acct-2"))
}
