package domain

import "errors"

// BankLine represents one funding event to be allocated.
// Created per allocation run and never mutated afterwards.
type BankLine struct {
	ID             string     `json:"id"`
	AvailableCents int64      `json:"availableCents"`
	Gate           GateStatus `json:"gate,omitempty"` // defaults to OPEN
}

// Validate ensures the bank line adheres to domain rules
// Returns an error if validation fails
func (b *BankLine) Validate() error {
	if b.ID == "" {
		return errors.New("bank line id cannot be empty")
	}
	if b.AvailableCents < 0 {
		return errors.New("bank line available cents must be non-negative")
	}
	if g := b.Gate.OrOpen(); g != GateOpen && g != GateClosed {
		return errors.New("bank line gate must be OPEN or CLOSED")
	}
	return nil
}
