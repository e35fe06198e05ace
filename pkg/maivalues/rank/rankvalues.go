package rankvalues

import (
	"slices"
	"strings"
)

// Score ranks ordered from worst to best, as typed by the user.
var scoreRank = []string{"d", "c", "b", "bb", "bbb", "a", "aa", "aaa", "s", "s+", "ss", "ss+", "sss", "sss+"}

// Minimum achievement percentage for each score rank.
var scoreRankThreshold = []float64{0, 50, 60, 70, 75, 80, 90, 94, 97, 98, 99, 99.5, 100, 100.5}

// Combo ranks ordered from worst to best.
var comboRank = []string{"fc", "fc+", "ap", "ap+"}

// Sync ranks ordered from worst to best.
var syncRank = []string{"fs", "fs+", "fsd", "fsd+"}

// Flags as they arrive from the score provider.
var comboFlag = []string{"", "fc", "fcp", "ap", "app"}
var syncFlag = []string{"", "fs", "fsp", "fsd", "fsdp"}

// Index of the first score rank accepted by the level progress query ("s").
const ScoreFloorIndex = 8

// ScoreRanks returns the score rank names, worst to best.
func ScoreRanks() []string {
	return slices.Clone(scoreRank)
}

// ScoreIndex returns the position of the score rank, or -1 if unknown.
// The comparison is case-insensitive.
func ScoreIndex(rank string) int {
	return slices.Index(scoreRank, strings.ToLower(rank))
}

// ComboIndex returns the position of the combo rank, or -1 if unknown.
func ComboIndex(rank string) int {
	return slices.Index(comboRank, strings.ToLower(rank))
}

// SyncIndex returns the position of the sync rank, or -1 if unknown.
func SyncIndex(rank string) int {
	return slices.Index(syncRank, strings.ToLower(rank))
}

// IsKnown verifies if the token belongs to any of the three rank vocabularies.
func IsKnown(rank string) bool {
	return ScoreIndex(rank) != -1 || ComboIndex(rank) != -1 || SyncIndex(rank) != -1
}

// ScoreThreshold returns the minimum achievement for the given score rank.
func ScoreThreshold(rank string) (float64, bool) {
	idx := ScoreIndex(rank)
	if idx == -1 {
		return 0, false
	}
	return scoreRankThreshold[idx], true
}

// ComboFlagIndex converts a provider combo flag to its ordered position.
// An empty flag maps to 0, "ap+" maps to 4.
func ComboFlagIndex(flag string) int {
	return slices.Index(comboFlag, strings.ToLower(flag))
}

// SyncFlagIndex converts a provider sync flag to its ordered position.
func SyncFlagIndex(flag string) int {
	return slices.Index(syncFlag, strings.ToLower(flag))
}

// ComboFlagForRank returns the provider flag matching a user-typed combo rank.
func ComboFlagForRank(rank string) (string, bool) {
	idx := ComboIndex(rank)
	if idx == -1 {
		return "", false
	}
	return comboFlag[idx+1], true
}

// SyncFlagForRank returns the provider flag matching a user-typed sync rank.
func SyncFlagForRank(rank string) (string, bool) {
	idx := SyncIndex(rank)
	if idx == -1 {
		return "", false
	}
	return syncFlag[idx+1], true
}
