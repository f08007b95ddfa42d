package allocator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/harborpoint/moneygate-backend/internal/domain"
)

// Result is the outcome of one allocation run
type Result struct {
	Allocations []domain.Allocation
	PolicyHash  string
	Explain     string
}

// bucketPlan tracks one bucket through the allocation passes
type bucketPlan struct {
	id          string
	accounts    []domain.AccountState // eligible accounts, sorted by account id
	requested   int64                 // sum of eligible clamped requests
	minBound    int64
	maxBound    int64
	minRequired int64 // amount the bucket keeps through the excess-reduction pass
	allocated   int64
}

// ApplyPolicy splits the bank line's available cents across policy buckets
// and then across individual accounts.
//
// The algorithm is a single pass plus two correction passes, all in
// ascending bucket id order:
//  1. Per bucket, filter eligible accounts and cap the initial allocation at
//     min(requested, maxBound).
//  2. Excess-reduction: if the initial allocations oversubscribe the line,
//     reduce buckets down to minRequired first, then down to zero.
//  3. Leftover-distribution: top buckets below minRequired back up, then fill
//     remaining capacity up to maxBound.
//
// Funds are conserved exactly: the returned allocations sum to at most the
// available cents and at most the total requested cents, and identical input
// always produces identical output. Accounts referencing a bucket with no
// rule fail fast with ErrMissingBucketRule.
func ApplyPolicy(line domain.BankLine, ruleset domain.PolicyRuleset, accounts []domain.AccountState) (Result, error) {
	policyHash, err := ruleset.Hash()
	if err != nil {
		return Result{}, err
	}

	// A bucket id with no rule is an upstream configuration bug. Silently
	// dropping the account would hide it.
	for _, acct := range accounts {
		if _, ok := ruleset.Rule(acct.BucketID); !ok {
			return Result{}, fmt.Errorf("account %q references bucket %q: %w",
				acct.AccountID, acct.BucketID, domain.ErrMissingBucketRule)
		}
	}

	available := line.AvailableCents
	if available < 0 {
		available = 0
	}

	if line.Gate.OrOpen() == domain.GateClosed {
		return Result{
			Allocations: zeroAllocations(accounts),
			PolicyHash:  policyHash,
			Explain:     fmt.Sprintf("line=%s gate=CLOSED available=%d; allocated=0", line.ID, available),
		}, nil
	}
	if available == 0 {
		return Result{
			Allocations: zeroAllocations(accounts),
			PolicyHash:  policyHash,
			Explain:     fmt.Sprintf("line=%s gate=OPEN available=0; allocated=0", line.ID),
		}, nil
	}

	plans := buildBucketPlans(available, ruleset, accounts)

	// Excess-reduction pass: reduce to minRequired first, then to zero,
	// both in ascending bucket id order.
	total := int64(0)
	for i := range plans {
		total += plans[i].allocated
	}
	if excess := total - available; excess > 0 {
		for i := range plans {
			if excess == 0 {
				break
			}
			cut := min(plans[i].allocated-plans[i].minRequired, excess)
			if cut > 0 {
				plans[i].allocated -= cut
				excess -= cut
			}
		}
		for i := range plans {
			if excess == 0 {
				break
			}
			cut := min(plans[i].allocated, excess)
			plans[i].allocated -= cut
			excess -= cut
		}
	}

	// Leftover-distribution pass: top buckets below minRequired back up,
	// then fill remaining corridor capacity.
	allocated := int64(0)
	for i := range plans {
		allocated += plans[i].allocated
	}
	if leftover := available - allocated; leftover > 0 {
		for i := range plans {
			if leftover == 0 {
				break
			}
			if plans[i].allocated < plans[i].minRequired {
				add := min(plans[i].minRequired-plans[i].allocated, leftover)
				plans[i].allocated += add
				leftover -= add
			}
		}
		for i := range plans {
			if leftover == 0 {
				break
			}
			capacity := min(plans[i].maxBound, plans[i].requested)
			if plans[i].allocated < capacity {
				add := min(capacity-plans[i].allocated, leftover)
				plans[i].allocated += add
				leftover -= add
			}
		}
	}

	// Per-account distribution within each bucket.
	allocByAccount := make(map[string]int64, len(accounts))
	totalAllocated := int64(0)
	for i := range plans {
		distributeBucket(&plans[i], allocByAccount)
		totalAllocated += plans[i].allocated
	}

	out := make([]domain.Allocation, 0, len(accounts))
	for _, acct := range accounts {
		out = append(out, domain.Allocation{
			AccountID:      acct.AccountID,
			BucketID:       acct.BucketID,
			AllocatedCents: allocByAccount[acct.AccountID],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })

	var explain strings.Builder
	fmt.Fprintf(&explain, "line=%s gate=OPEN available=%d", line.ID, available)
	for i := range plans {
		fmt.Fprintf(&explain, "; bucket %s allocated=%d/%d", plans[i].id, plans[i].allocated, plans[i].requested)
	}
	fmt.Fprintf(&explain, "; leftover=%d", available-totalAllocated)

	return Result{
		Allocations: out,
		PolicyHash:  policyHash,
		Explain:     explain.String(),
	}, nil
}

// buildBucketPlans filters eligible accounts per bucket and computes the
// corridor bounds and initial allocation, in ascending bucket id order.
func buildBucketPlans(available int64, ruleset domain.PolicyRuleset, accounts []domain.AccountState) []bucketPlan {
	availDec := decimal.NewFromInt(available)
	scaleDec := decimal.NewFromInt(domain.BpsScale)

	rules := make([]domain.PolicyBucketRule, len(ruleset.Rules))
	copy(rules, ruleset.Rules)
	sort.Slice(rules, func(i, j int) bool { return rules[i].BucketID < rules[j].BucketID })

	plans := make([]bucketPlan, 0, len(rules))
	for _, rule := range rules {
		plan := bucketPlan{id: rule.BucketID}

		if rule.Gate.OrOpen() == domain.GateOpen {
			for _, acct := range accounts {
				if acct.BucketID != rule.BucketID {
					continue
				}
				if acct.Gate.OrOpen() != domain.GateOpen {
					continue
				}
				if !rule.AllowsCounterparty(acct.CounterpartyID) {
					continue
				}
				plan.accounts = append(plan.accounts, acct)
				plan.requested += acct.EffectiveRequest()
			}
			sort.Slice(plan.accounts, func(i, j int) bool {
				return plan.accounts[i].AccountID < plan.accounts[j].AccountID
			})
		}

		// The widening multiply available*bps stays in decimal so it cannot
		// overflow before the divide.
		plan.minBound = max(roundHalfEven(availDec.Mul(decimal.NewFromInt(rule.Corridor.MinBps)), scaleDec).IntPart(), 0)
		plan.maxBound = max(roundHalfEven(availDec.Mul(decimal.NewFromInt(rule.Corridor.MaxBps)), scaleDec).IntPart(), 0)
		plan.allocated = min(plan.requested, plan.maxBound)
		plan.minRequired = min(plan.minBound, plan.requested)

		plans = append(plans, plan)
	}
	return plans
}

// distributeBucket splits the bucket's final allocation across its eligible
// accounts proportionally to each account's share of the bucket's demand.
// Accounts are already sorted by ascending id; the last account absorbs the
// rounding residue so the shares sum exactly to the bucket allocation.
func distributeBucket(plan *bucketPlan, allocByAccount map[string]int64) {
	if plan.allocated == 0 || len(plan.accounts) == 0 || plan.requested == 0 {
		return
	}

	allocDec := decimal.NewFromInt(plan.allocated)
	requestedDec := decimal.NewFromInt(plan.requested)

	pool := plan.allocated
	for i, acct := range plan.accounts {
		req := acct.EffectiveRequest()
		var share int64
		if i == len(plan.accounts)-1 {
			share = pool
		} else {
			share = roundHalfEven(allocDec.Mul(decimal.NewFromInt(req)), requestedDec).IntPart()
		}
		share = min(share, req)
		share = min(share, pool)
		allocByAccount[acct.AccountID] = share
		pool -= share
	}

	// Residue the last account could not take (its own request capped it)
	// tops earlier accounts back up. The bucket allocation never exceeds the
	// bucket demand, so capacity always exists.
	if pool > 0 {
		for _, acct := range plan.accounts {
			if pool == 0 {
				break
			}
			req := acct.EffectiveRequest()
			if cur := allocByAccount[acct.AccountID]; cur < req {
				add := min(req-cur, pool)
				allocByAccount[acct.AccountID] = cur + add
				pool -= add
			}
		}
	}
}

func zeroAllocations(accounts []domain.AccountState) []domain.Allocation {
	out := make([]domain.Allocation, 0, len(accounts))
	for _, acct := range accounts {
		out = append(out, domain.Allocation{
			AccountID:      acct.AccountID,
			BucketID:       acct.BucketID,
			AllocatedCents: 0,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	return out
}
