package levelvalues

import (
	"slices"
	"strings"
)

// All display levels, ordered from easiest to hardest.
// Levels 7 and above have a "+" variant, except 15.
var levelList = []string{
	"1", "2", "3", "4", "5", "6",
	"7", "7+", "8", "8+", "9", "9+",
	"10", "10+", "11", "11+", "12", "12+",
	"13", "13+", "14", "14+", "15",
}

const (
	// Index of the first level accepted by the rating tables (lv7).
	TableFloorIndex = 6

	// Index of the first level accepted by the level progress query (lv9+).
	ProcessFloorIndex = 11
)

// Levels returns a copy of the full level list.
func Levels() []string {
	return slices.Clone(levelList)
}

// Index returns the position of the level on the list, or -1 if unknown.
func Index(level string) int {
	return slices.Index(levelList, level)
}

// IsKnown verifies if the given token is a valid display level.
func IsKnown(level string) bool {
	return Index(level) != -1
}

// TableSupported verifies if the level can be queried on the rating tables.
// Only lv7 and above have a table.
func TableSupported(level string) bool {
	return Index(level) >= TableFloorIndex
}

// Range returns the inclusive decimal tier window covered by a display level.
// A plain level covers x.0 to x.6, a plus level covers x.7 to x.9.
func Range(level string) (float64, float64, bool) {
	idx := Index(level)
	if idx == -1 {
		return 0, 0, false
	}

	base := 0.0
	plus := strings.HasSuffix(level, "+")
	trimmed := strings.TrimSuffix(level, "+")
	for _, c := range trimmed {
		base = base*10 + float64(c-'0')
	}

	if plus {
		return base + 0.7, base + 0.9, true
	}
	return base, base + 0.6, true
}
