package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactor(t *testing.T) {
	tests := []struct {
		achievement float64
		expected    float64
	}{
		{100.5, 22.4},
		{100.7, 22.4},
		{100.0, 21.6},
		{99.5, 21.1},
		{97.0, 20.0},
		{96.9999, 16.8},
		{50.0, 8.0},
		{9.9, 0},
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Factor(tt.achievement), "achievement %v", tt.achievement)
	}
}

func TestCompute(t *testing.T) {
	// 14.0 at the cap: 14 * 1.005 * 22.4 = 315.1...
	assert.Equal(t, 315, Compute(14.0, 100.5))

	// Above the cap is clamped, never higher.
	assert.Equal(t, Compute(14.0, 100.5), Compute(14.0, 101.0))

	// 13.2 at sss: 13.2 * 1.0 * 21.6 = 285.1...
	assert.Equal(t, 285, Compute(13.2, 100.0))

	assert.Equal(t, 0, Compute(13.0, 5.0))
}
