package rating

import "math"

// Achievement ceiling enforced by the game.
const AchievementCap = 100.5

// Rating factor breakpoints, from highest achievement to lowest.
// The factor applied is the one of the highest breakpoint reached.
var factorTable = []struct {
	achievement float64
	factor      float64
}{
	{100.5, 22.4},
	{100.0, 21.6},
	{99.5, 21.1},
	{99.0, 20.8},
	{98.0, 20.3},
	{97.0, 20.0},
	{94.0, 16.8},
	{90.0, 15.2},
	{80.0, 13.6},
	{75.0, 12.0},
	{70.0, 11.2},
	{60.0, 9.6},
	{50.0, 8.0},
	{40.0, 6.4},
	{30.0, 4.8},
	{20.0, 3.2},
	{10.0, 1.6},
}

// Factor returns the rating factor for a given achievement percentage.
func Factor(achievement float64) float64 {
	for _, entry := range factorTable {
		if achievement >= entry.achievement {
			return entry.factor
		}
	}
	return 0
}

// Compute derives the rating contribution ("ra") of a single record.
// Achievements above the cap are clamped before applying the factor.
func Compute(ds float64, achievement float64) int {
	capped := math.Min(achievement, AchievementCap)
	return int(ds * capped / 100 * Factor(capped))
}
