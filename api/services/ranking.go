package services

import (
	"context"
	"fmt"
	"maidx/api/cache"
	"maidx/api/dto"
	"maidx/pkg/messages"
	"maidx/provider"
	"sort"
	"strings"
)

const (
	rankingPageSize = 50
	rankingCacheKey = "maidx:ranking"
)

// RankingClient is the leaderboard provider surface.
type RankingClient interface {
	Ranking(ctx context.Context) ([]provider.RankingEntry, error)
}

// HTTPRankingClient talks to the real leaderboard provider.
type HTTPRankingClient struct{}

func (HTTPRankingClient) Ranking(ctx context.Context) ([]provider.RankingEntry, error) {
	return provider.Ranking(ctx)
}

// RankingService implements the global leaderboard queries.
type RankingService struct {
	client  RankingClient
	cache   *cache.LookupCache
	players *PlayerService
}

// RankingServiceDeps is the dependency list for the ranking service.
type RankingServiceDeps struct {
	Client  RankingClient
	Cache   *cache.LookupCache
	Players *PlayerService
}

// NewRankingService creates a ranking service.
func NewRankingService(deps *RankingServiceDeps) *RankingService {
	return &RankingService{
		client:  deps.Client,
		cache:   deps.Cache,
		players: deps.Players,
	}
}

// RatingRanking returns one page of the leaderboard, optionally narrowed by
// a case-insensitive substring of the username.
func (rs *RankingService) RatingRanking(ctx context.Context, name string, page int) (*dto.RankingPage, error) {
	entries, err := rs.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	name = strings.ToLower(name)

	var rows []dto.RankingRow
	for position, entry := range entries {
		if name != "" && !strings.Contains(strings.ToLower(entry.Username), name) {
			continue
		}
		rows = append(rows, dto.RankingRow{
			Rank:     position + 1,
			Username: entry.Username,
			Ra:       entry.Ra,
		})
	}

	totalPages := (len(rows) + rankingPageSize - 1) / rankingPageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}

	start := (page - 1) * rankingPageSize
	if start >= len(rows) {
		rows = nil
	} else {
		rows = rows[start:min(start+rankingPageSize, len(rows))]
	}

	return &dto.RankingPage{
		Page:       page,
		TotalPages: totalPages,
		Rows:       rows,
	}, nil
}

// MyRank resolves the caller's username and returns the formatted 1-based
// leaderboard position. A username missing from the feed is a normal reply.
func (rs *RankingService) MyRank(ctx context.Context, qqid int64) (string, error) {
	best, err := rs.players.Best(ctx, qqid, "")
	if err != nil {
		return "", err
	}

	entries, err := rs.snapshot(ctx)
	if err != nil {
		return "", err
	}

	for position, entry := range entries {
		if entry.Username == best.Username {
			return fmt.Sprintf(messages.MyRankFmt, entry.Ra, position+1), nil
		}
	}

	return "", Rejection(messages.NotRanked)
}

// snapshot returns the full leaderboard ordered by rating descending, ties
// kept on the feed order. Goes memory, then Redis, then the provider.
func (rs *RankingService) snapshot(ctx context.Context) ([]provider.RankingEntry, error) {
	if cached := rs.cache.Get(rankingCacheKey); cached != nil {
		return cached.([]provider.RankingEntry), nil
	}

	var fromRedis []provider.RankingEntry
	if rs.cache.GetJSON(ctx, rankingCacheKey, &fromRedis) {
		rs.cache.Set(rankingCacheKey, fromRedis)
		return fromRedis, nil
	}

	entries, err := rs.client.Ranking(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Ra > entries[j].Ra
	})

	rs.cache.Set(rankingCacheKey, entries)
	rs.cache.PutJSON(ctx, rankingCacheKey, entries)

	return entries, nil
}
