package dto

// RankingRow is one line of the rendered leaderboard page.
type RankingRow struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Ra       int    `json:"ra"`
}

// RankingPage is a single page of the global leaderboard.
type RankingPage struct {
	Page       int          `json:"page"`
	TotalPages int          `json:"totalPages"`
	Rows       []RankingRow `json:"rows"`
}
