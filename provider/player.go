package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"maidx/pkg/config"
	"maidx/pkg/messages"
	"maidx/provider/requests"
	"net/http"
	"net/url"
	"strconv"
)

// ScoreRecord is a single achievement record of a player on one chart.
type ScoreRecord struct {
	Achievement float64 `json:"achievements"`
	DS          float64 `json:"ds"`
	ComboFlag   string  `json:"fc"`
	SyncFlag    string  `json:"fs"`
	Level       string  `json:"level"`
	LevelIndex  int     `json:"level_index"`
	Ra          int     `json:"ra"`
	Rate        string  `json:"rate"`
	MusicID     int     `json:"song_id"`
	Title       string  `json:"title"`
	Type        string  `json:"type"`
}

// BestCharts holds the two fixed-size best lists, one per chart variant pool.
type BestCharts struct {
	SD []ScoreRecord `json:"sd"`
	DX []ScoreRecord `json:"dx"`
}

// PlayerBest is the b50 payload of a single player.
type PlayerBest struct {
	Username string     `json:"username"`
	Rating   int        `json:"rating"`
	Charts   BestCharts `json:"charts"`
}

// PlayerRecords is the complete record list of a single player.
type PlayerRecords struct {
	Username string        `json:"username"`
	Rating   int           `json:"rating"`
	Records  []ScoreRecord `json:"records"`
}

// QueryUserBest fetches the best lists of a player, by qq id or username.
// Returns ErrUserNotFound when no account is bound and ErrUserDisabledQuery
// when the account refuses queries.
func QueryUserBest(ctx context.Context, qqid int64, username string) (*PlayerBest, error) {
	payload := map[string]any{"b50": true}
	if username != "" {
		payload["username"] = username
	} else {
		payload["qq"] = strconv.FormatInt(qqid, 10)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	reqURL := config.Provider.BaseURL + "/query/player"
	resp, err := requests.Request(ctx, reqURL, http.MethodPost, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", reqURL, err)
	}
	defer resp.Body.Close()

	if err := checkAccountStatus(resp.StatusCode, reqURL); err != nil {
		return nil, err
	}

	var best PlayerBest
	if err := json.NewDecoder(resp.Body).Decode(&best); err != nil {
		return nil, fmt.Errorf(messages.FailedToParseMsg+": %w", err)
	}

	return &best, nil
}

// QueryUserAll fetches the full record list of a player through the
// developer API. Needed by the plate and level progress computations, which
// read every record instead of just the best lists.
func QueryUserAll(ctx context.Context, qqid int64, username string) (*PlayerRecords, error) {
	query := url.Values{}
	if username != "" {
		query.Set("username", username)
	} else {
		query.Set("qq", strconv.FormatInt(qqid, 10))
	}

	reqURL := config.Provider.BaseURL + "/dev/player/records?" + query.Encode()
	resp, err := requests.AuthRequest(ctx, reqURL, http.MethodGet, nil)
	if err != nil {
		return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", reqURL, err)
	}
	defer resp.Body.Close()

	if err := checkAccountStatus(resp.StatusCode, reqURL); err != nil {
		return nil, err
	}

	var records PlayerRecords
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf(messages.FailedToParseMsg+": %w", err)
	}

	return &records, nil
}

// checkAccountStatus converts the provider status codes into the account
// resolution sentinels.
func checkAccountStatus(status int, url string) error {
	switch status {
	case http.StatusOK:
		return nil
	case http.StatusBadRequest:
		return ErrUserNotFound
	case http.StatusForbidden:
		return ErrUserDisabledQuery
	default:
		return fmt.Errorf(messages.BadStatusCodeMsg, status, url)
	}
}
