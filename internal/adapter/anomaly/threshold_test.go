package anomaly

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborpoint/moneygate-backend/internal/domain"
)

func evaluate(t *testing.T, d *Detector, gateID string, amount int64) domain.AnomalyEvaluation {
	t.Helper()
	eval, err := d.Evaluate(context.Background(), domain.RemittanceRequest{
		ID: "rem", GateID: gateID, AmountCents: amount,
	})
	require.NoError(t, err)
	return eval
}

func TestDetector_AbsoluteLimits(t *testing.T) {
	d := NewDetector(Thresholds{SoftLimitCents: 100_000, HardLimitCents: 1_000_000})

	assert.Equal(t, domain.SeverityNone, evaluate(t, d, "g1", 99_999).Severity)

	soft := evaluate(t, d, "g1", 100_000)
	assert.Equal(t, domain.SeveritySoft, soft.Severity)
	assert.Equal(t, "AMOUNT_LIMIT", soft.Detail)

	hard := evaluate(t, d, "g1", 1_000_000)
	assert.Equal(t, domain.SeverityHard, hard.Severity)
	assert.Equal(t, "AMOUNT_LIMIT", hard.Detail)
}

func TestDetector_NegativeAmountsUseMagnitude(t *testing.T) {
	d := NewDetector(Thresholds{HardLimitCents: 1_000_000})
	assert.Equal(t, domain.SeverityHard, evaluate(t, d, "g1", -2_000_000).Severity)
}

func TestDetector_VelocityBaseline(t *testing.T) {
	d := NewDetector(Thresholds{BaselineWindow: 10})

	// build a baseline around 1000 cents
	for i := 0; i < 5; i++ {
		assert.Equal(t, domain.SeverityNone, evaluate(t, d, "g1", 1000).Severity)
	}

	spike := evaluate(t, d, "g1", 3500)
	assert.Equal(t, domain.SeveritySoft, spike.Severity)
	assert.Equal(t, "VELOCITY_SPIKE", spike.Detail)

	// baselines are per gate
	assert.Equal(t, domain.SeverityNone, evaluate(t, d, "g2", 3500).Severity)
}

func TestDetector_VelocityBreachIsHard(t *testing.T) {
	d := NewDetector(Thresholds{BaselineWindow: 10})
	for i := 0; i < 5; i++ {
		evaluate(t, d, "g1", 1000)
	}

	breach := evaluate(t, d, "g1", 10_000)
	assert.Equal(t, domain.SeverityHard, breach.Severity)
	assert.Equal(t, "VELOCITY_BREACH", breach.Detail)
}

func TestDetector_TinyWindowHasNoBaseline(t *testing.T) {
	d := NewDetector(Thresholds{BaselineWindow: 10})
	evaluate(t, d, "g1", 1000)
	evaluate(t, d, "g1", 1000)

	// only two samples recorded, no verdict yet
	assert.Equal(t, domain.SeverityNone, evaluate(t, d, "g1", 100_000).Severity)
}

func TestDetector_HardLimitBeatsVelocitySpike(t *testing.T) {
	d := NewDetector(Thresholds{HardLimitCents: 5000, BaselineWindow: 10})
	for i := 0; i < 5; i++ {
		evaluate(t, d, "g1", 1000)
	}

	eval := evaluate(t, d, "g1", 5000)
	assert.Equal(t, domain.SeverityHard, eval.Severity)
	assert.Equal(t, "AMOUNT_LIMIT", eval.Detail)
}
