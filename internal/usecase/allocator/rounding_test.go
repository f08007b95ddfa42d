package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborpoint/moneygate-backend/internal/domain"
)

func TestRoundedDivide_HalfToEven(t *testing.T) {
	tests := []struct {
		name     string
		dividend int64
		divisor  int64
		want     int64
	}{
		{"exact division", 100, 4, 25},
		{"rounds down below midpoint", 1004, 10, 100},
		{"rounds up above midpoint", 1006, 10, 101},
		{"tie to even from odd quotient", 3, 2, 2},       // 1.5 -> 2
		{"tie stays on even quotient", 5, 2, 2},          // 2.5 -> 2
		{"tie to even larger", 35, 10, 4},                // 3.5 -> 4
		{"tie stays even larger", 45, 10, 4},             // 4.5 -> 4
		{"negative tie to even", -3, 2, -2},              // -1.5 -> -2
		{"negative tie stays even", -5, 2, -2},           // -2.5 -> -2
		{"negative dividend rounds", -1006, 10, -101},    //
		{"negative divisor", 3, -2, -2},                  // -1.5 -> -2
		{"zero dividend", 0, 7, 0},                       //
		{"half cent boundary", 1, 2, 0},                  // 0.5 -> 0
		{"three halves of a cent", 150, 100, 2},          // 1.5 -> 2
		{"large amounts stay exact", 922337203685477580, 10, 92233720368547758},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RoundedDivide(tt.dividend, tt.divisor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundedDivide_DivisionByZero(t *testing.T) {
	_, err := RoundedDivide(100, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDivisionByZero)
}

func TestRoundedDivide_ResultWithinHalfDivisor(t *testing.T) {
	// |result*divisor - dividend| <= divisor/2 for a spread of inputs.
	for dividend := int64(-50); dividend <= 50; dividend++ {
		for _, divisor := range []int64{1, 2, 3, 7, 10, 16} {
			got, err := RoundedDivide(dividend, divisor)
			require.NoError(t, err)
			diff := got*divisor - dividend
			if diff < 0 {
				diff = -diff
			}
			assert.LessOrEqual(t, diff*2, divisor,
				"dividend=%d divisor=%d result=%d", dividend, divisor, got)
		}
	}
}
