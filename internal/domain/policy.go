package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// BpsScale is the number of basis points in 100%
const BpsScale = 10000

// Corridor is the allowed min/max share, in basis points of available funds,
// that a policy bucket may receive
type Corridor struct {
	MinBps int64 `json:"minBps"`
	MaxBps int64 `json:"maxBps"`
}

// PolicyBucketRule describes one policy bucket: its corridor, optional
// counterparty allow/deny lists, and an optional bucket-level gate.
// Immutable for the duration of one allocation run.
type PolicyBucketRule struct {
	BucketID          string     `json:"bucketId"`
	Corridor          Corridor   `json:"corridor"`
	CounterpartyAllow []string   `json:"counterpartyAllow,omitempty"` // nil means no allow-list
	CounterpartyDeny  []string   `json:"counterpartyDeny,omitempty"`  // nil means no deny-list
	Gate              GateStatus `json:"gate,omitempty"`              // defaults to OPEN
}

// AllowsCounterparty reports whether the counterparty passes both the
// allow-list (membership required when present) and the deny-list
func (r *PolicyBucketRule) AllowsCounterparty(counterpartyID string) bool {
	if len(r.CounterpartyAllow) > 0 {
		found := false
		for _, id := range r.CounterpartyAllow {
			if id == counterpartyID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, id := range r.CounterpartyDeny {
		if id == counterpartyID {
			return false
		}
	}
	return true
}

// PolicyRuleset is a collection of bucket rules, processed in ascending
// bucket id order regardless of the order rules were supplied in
type PolicyRuleset struct {
	Rules []PolicyBucketRule `json:"rules"`
}

// Rule returns the rule for the given bucket id, if present
func (rs *PolicyRuleset) Rule(bucketID string) (PolicyBucketRule, bool) {
	for _, rule := range rs.Rules {
		if rule.BucketID == bucketID {
			return rule, true
		}
	}
	return PolicyBucketRule{}, false
}

// Validate ensures the ruleset adheres to domain rules
// Returns an error if validation fails
func (rs *PolicyRuleset) Validate() error {
	seen := make(map[string]bool, len(rs.Rules))
	for _, rule := range rs.Rules {
		if rule.BucketID == "" {
			return errors.New("policy bucket rule must have a bucket id")
		}
		if seen[rule.BucketID] {
			return fmt.Errorf("duplicate bucket id %q in ruleset", rule.BucketID)
		}
		seen[rule.BucketID] = true

		c := rule.Corridor
		if c.MinBps < 0 || c.MinBps > BpsScale || c.MaxBps < 0 || c.MaxBps > BpsScale {
			return fmt.Errorf("bucket %q corridor bps must be within [0, %d]", rule.BucketID, BpsScale)
		}
		if c.MinBps > c.MaxBps {
			return fmt.Errorf("bucket %q corridor min bps exceeds max bps", rule.BucketID)
		}
		if g := rule.Gate.OrOpen(); g != GateOpen && g != GateClosed {
			return fmt.Errorf("bucket %q gate must be OPEN or CLOSED", rule.BucketID)
		}
	}
	return nil
}

// canonicalRule is the wire form used for hashing: sorted lists, gate
// defaulted to OPEN when absent
type canonicalRule struct {
	BucketID          string     `json:"bucketId"`
	MinBps            int64      `json:"minBps"`
	MaxBps            int64      `json:"maxBps"`
	CounterpartyAllow []string   `json:"counterpartyAllow,omitempty"`
	CounterpartyDeny  []string   `json:"counterpartyDeny,omitempty"`
	Gate              GateStatus `json:"gate"`
}

// CanonicalJSON returns a canonical JSON form of the ruleset: rules sorted by
// bucket id, allow/deny lists sorted, gates defaulted to OPEN
func (rs *PolicyRuleset) CanonicalJSON() ([]byte, error) {
	canonical := make([]canonicalRule, 0, len(rs.Rules))
	for _, rule := range rs.Rules {
		canonical = append(canonical, canonicalRule{
			BucketID:          rule.BucketID,
			MinBps:            rule.Corridor.MinBps,
			MaxBps:            rule.Corridor.MaxBps,
			CounterpartyAllow: sortedCopy(rule.CounterpartyAllow),
			CounterpartyDeny:  sortedCopy(rule.CounterpartyDeny),
			Gate:              rule.Gate.OrOpen(),
		})
	}
	sort.Slice(canonical, func(i, j int) bool {
		return canonical[i].BucketID < canonical[j].BucketID
	})
	return json.Marshal(canonical)
}

// Hash returns the SHA-256 hex digest of the canonical ruleset JSON.
// Every allocation decision carries this hash so it can be traced back to
// the exact ruleset version that produced it.
func (rs *PolicyRuleset) Hash() (string, error) {
	data, err := rs.CanonicalJSON()
	if err != nil {
		return "", fmt.Errorf("canonicalize ruleset: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func sortedCopy(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}
