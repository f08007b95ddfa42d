package anomaly

import (
	"context"
	"fmt"
	"sync"

	"github.com/harborpoint/moneygate-backend/internal/domain"
)

// Thresholds configures the built-in detector
type Thresholds struct {
	// SoftLimitCents flags amounts at or above this value. Zero disables.
	SoftLimitCents int64
	// HardLimitCents blocks amounts at or above this value. Zero disables.
	HardLimitCents int64
	// BaselineWindow is how many recent amounts per gate feed the velocity
	// baseline. Zero disables velocity detection.
	BaselineWindow int
}

// Velocity deviation cutoffs: an amount at 3x the rolling mean is suspicious,
// at 6x it is blocking.
const (
	softDeviation = 3
	hardDeviation = 6
)

// Detector is the built-in anomaly pipeline. It combines absolute amount
// limits with a per-gate rolling velocity baseline. It keeps state in memory
// only; a restart resets every baseline.
type Detector struct {
	thresholds Thresholds

	mu      sync.Mutex
	history map[string][]int64
}

// NewDetector creates a detector with the given thresholds
func NewDetector(thresholds Thresholds) *Detector {
	return &Detector{
		thresholds: thresholds,
		history:    make(map[string][]int64),
	}
}

// Evaluate classifies one request. Absolute limits are checked first, then
// the velocity baseline; the most severe finding wins. Every evaluated
// amount feeds the gate's baseline regardless of verdict.
func (d *Detector) Evaluate(_ context.Context, req domain.RemittanceRequest) (domain.AnomalyEvaluation, error) {
	amount := req.AmountCents
	if amount < 0 {
		amount = -amount
	}

	eval := domain.AnomalyEvaluation{Severity: domain.SeverityNone}

	if d.thresholds.SoftLimitCents > 0 && amount >= d.thresholds.SoftLimitCents {
		eval = domain.AnomalyEvaluation{
			Severity: domain.SeveritySoft,
			Detail:   "AMOUNT_LIMIT",
			Metadata: map[string]string{"limitCents": fmt.Sprint(d.thresholds.SoftLimitCents)},
		}
	}
	if d.thresholds.HardLimitCents > 0 && amount >= d.thresholds.HardLimitCents {
		eval = domain.AnomalyEvaluation{
			Severity: domain.SeverityHard,
			Detail:   "AMOUNT_LIMIT",
			Metadata: map[string]string{"limitCents": fmt.Sprint(d.thresholds.HardLimitCents)},
		}
	}

	if velocity := d.velocityVerdict(req.GateID, amount); velocity.Severity.Exceeds(eval.Severity) {
		eval = velocity
	}
	return eval, nil
}

// velocityVerdict compares amount against the gate's rolling mean and
// records the amount into the window
func (d *Detector) velocityVerdict(gateID string, amount int64) domain.AnomalyEvaluation {
	if d.thresholds.BaselineWindow <= 0 {
		return domain.AnomalyEvaluation{Severity: domain.SeverityNone}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	window := d.history[gateID]
	verdict := domain.AnomalyEvaluation{Severity: domain.SeverityNone}

	// an empty or tiny window has no meaningful baseline
	if len(window) >= 3 {
		var sum int64
		for _, v := range window {
			sum += v
		}
		baseline := sum / int64(len(window))
		if baseline > 0 {
			detail := fmt.Sprintf("baseline=%d amount=%d", baseline, amount)
			switch {
			case amount >= baseline*hardDeviation:
				verdict = domain.AnomalyEvaluation{
					Severity: domain.SeverityHard,
					Detail:   "VELOCITY_BREACH",
					Metadata: map[string]string{"velocity": detail},
				}
			case amount >= baseline*softDeviation:
				verdict = domain.AnomalyEvaluation{
					Severity: domain.SeveritySoft,
					Detail:   "VELOCITY_SPIKE",
					Metadata: map[string]string{"velocity": detail},
				}
			}
		}
	}

	window = append(window, amount)
	if len(window) > d.thresholds.BaselineWindow {
		window = window[len(window)-d.thresholds.BaselineWindow:]
	}
	d.history[gateID] = window

	return verdict
}
