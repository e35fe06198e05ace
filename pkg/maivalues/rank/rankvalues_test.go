package rankvalues

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreIndex(t *testing.T) {
	assert.Equal(t, 0, ScoreIndex("d"))
	assert.Equal(t, 8, ScoreIndex("s"))
	assert.Equal(t, 8, ScoreIndex("S"))
	assert.Equal(t, 13, ScoreIndex("sss+"))
	assert.Equal(t, -1, ScoreIndex("z"))
}

func TestScoreThreshold(t *testing.T) {
	tests := []struct {
		rank      string
		threshold float64
		ok        bool
	}{
		{"d", 0, true},
		{"s", 97, true},
		{"ss", 99, true},
		{"sss", 100, true},
		{"sss+", 100.5, true},
		{"fc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.rank, func(t *testing.T) {
			threshold, ok := ScoreThreshold(tt.rank)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.threshold, threshold)
		})
	}
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown("sss+"))
	assert.True(t, IsKnown("fc+"))
	assert.True(t, IsKnown("fsd"))
	assert.False(t, IsKnown("fcx"))
	assert.False(t, IsKnown(""))
}

func TestFlagConversions(t *testing.T) {
	// Provider flags are ordered with the empty flag at position zero.
	assert.Equal(t, 0, ComboFlagIndex(""))
	assert.Equal(t, 4, ComboFlagIndex("app"))
	assert.Equal(t, -1, ComboFlagIndex("nope"))

	flag, ok := ComboFlagForRank("fc")
	assert.True(t, ok)
	assert.Equal(t, "fc", flag)

	flag, ok = ComboFlagForRank("ap+")
	assert.True(t, ok)
	assert.Equal(t, "app", flag)

	flag, ok = SyncFlagForRank("fsd")
	assert.True(t, ok)
	assert.Equal(t, "fsd", flag)

	_, ok = SyncFlagForRank("s")
	assert.False(t, ok)
}
