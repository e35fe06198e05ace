package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"maidx/pkg/config"
	"maidx/pkg/messages"
	"maidx/provider/requests"
	"net/http"
)

// RankingEntry is one row of the global rating leaderboard.
// The provider returns the feed unordered in places, the caller sorts it.
type RankingEntry struct {
	Username string `json:"username"`
	Ra       int    `json:"ra"`
}

// Ranking fetches the full leaderboard snapshot. The source has no
// pagination, the whole feed comes in one response.
func Ranking(ctx context.Context) ([]RankingEntry, error) {
	url := config.Provider.BaseURL + "/rating_ranking"
	resp, err := requests.Request(ctx, url, http.MethodGet, nil)
	if err != nil {
		return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(messages.BadStatusCodeMsg, resp.StatusCode, url)
	}

	var entries []RankingEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf(messages.FailedToParseMsg+": %w", err)
	}

	return entries, nil
}
