package dto

// ChartRow is one chart line handed to the table renderer.
type ChartRow struct {
	MusicID     int     `json:"musicId"`
	Title       string  `json:"title"`
	Type        string  `json:"type"`
	Band        string  `json:"band"`
	Level       string  `json:"level"`
	DS          float64 `json:"ds"`
	Achievement float64 `json:"achievement"`
	Ra          int     `json:"ra"`
	ComboFlag   string  `json:"comboFlag"`
	SyncFlag    string  `json:"syncFlag"`
}

// RatingTableGroup is one decimal tier block of a rating table.
type RatingTableGroup struct {
	DS     float64    `json:"ds"`
	Charts []ChartRow `json:"charts"`
}

// RatingTable is a full rating definition table for one display level.
type RatingTable struct {
	Level  string             `json:"level"`
	Groups []RatingTableGroup `json:"groups"`
}

// PlateBandProgress is the completion count of one difficulty band.
type PlateBandProgress struct {
	Band  string `json:"band"`
	Done  int    `json:"done"`
	Total int    `json:"total"`
}

// PlateProgress is the full progress summary of one plate for one player.
type PlateProgress struct {
	Version  string              `json:"version"`
	Plan     string              `json:"plan"`
	Username string              `json:"username"`
	Bands    []PlateBandProgress `json:"bands"`
	// Charts left to complete on the hardest band, for the rendered table.
	Remaining []ChartRow `json:"remaining"`
}

// ProgressPage is a paginated chart listing with player achievements.
type ProgressPage struct {
	Username   string     `json:"username"`
	Level      string     `json:"level"`
	Plan       string     `json:"plan"`
	Category   string     `json:"category,omitempty"`
	Page       int        `json:"page"`
	TotalPages int        `json:"totalPages"`
	Rows       []ChartRow `json:"rows"`
}

// RiseScoreSuggestion is one recommended chart and the achievement needed to
// gain the requested rating delta.
type RiseScoreSuggestion struct {
	Chart             ChartRow `json:"chart"`
	TargetAchievement float64  `json:"targetAchievement"`
	TargetRank        string   `json:"targetRank"`
	RatingGain        int      `json:"ratingGain"`
}

// RiseScoreResult is the full recommendation payload.
type RiseScoreResult struct {
	Username    string                `json:"username"`
	Suggestions []RiseScoreSuggestion `json:"suggestions"`
}
