package domain

// AccountState describes one account's demand for an allocation run.
// Supplied fresh per run; RequestedCents below zero is clamped to zero.
type AccountState struct {
	AccountID      string     `json:"accountId"`
	BucketID       string     `json:"bucketId"`
	RequestedCents int64      `json:"requestedCents"`
	CounterpartyID string     `json:"counterpartyId,omitempty"`
	Gate           GateStatus `json:"gate,omitempty"` // defaults to OPEN
}

// EffectiveRequest returns the requested amount clamped to be non-negative
func (a *AccountState) EffectiveRequest() int64 {
	if a.RequestedCents < 0 {
		return 0
	}
	return a.RequestedCents
}

// Allocation is the per-account output record of an allocation run.
// Ineligible accounts still appear with AllocatedCents = 0.
type Allocation struct {
	AccountID      string `json:"accountId"`
	BucketID       string `json:"bucketId"`
	AllocatedCents int64  `json:"allocatedCents"`
}
