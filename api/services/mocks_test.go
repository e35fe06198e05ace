package services

import (
	"context"
	"maidx/api/cache"
	"maidx/pkg/models/music"
	"maidx/provider"
	"time"

	"github.com/stretchr/testify/mock"
)

// Mock for the score provider surface.
type mockPlayerClient struct {
	mock.Mock
}

func (m *mockPlayerClient) QueryUserBest(ctx context.Context, qqid int64, username string) (*provider.PlayerBest, error) {
	args := m.Called(ctx, qqid, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.PlayerBest), args.Error(1)
}

func (m *mockPlayerClient) QueryUserAll(ctx context.Context, qqid int64, username string) (*provider.PlayerRecords, error) {
	args := m.Called(ctx, qqid, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.PlayerRecords), args.Error(1)
}

// Mock for the leaderboard provider surface.
type mockRankingClient struct {
	mock.Mock
}

func (m *mockRankingClient) Ranking(ctx context.Context) ([]provider.RankingEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]provider.RankingEntry), args.Error(1)
}

// Mock for the Redis tier of the lookup cache.
type mockLookupRedis struct {
	mock.Mock
}

func (m *mockLookupRedis) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockLookupRedis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

// Small fixed catalogue shared by the service tests.
func newTestMusicCache() *cache.MusicCache {
	c := cache.NewMusicCache(nil)
	c.Load([]*music.Music{
		{
			ID:      1,
			Title:   "Alpha",
			Type:    "DX",
			DS:      []float64{5.0, 8.5, 11.2, 13.0},
			Level:   []string{"5", "8+", "11", "13"},
			Version: "maimai",
		},
		{
			ID:      2,
			Title:   "Beta",
			Type:    "SD",
			DS:      []float64{4.0, 7.5, 10.0, 12.7},
			Level:   []string{"4", "7+", "10", "12+"},
			Version: "maimai PLUS",
		},
		{
			ID:      3,
			Title:   "Gamma",
			Type:    "DX",
			DS:      []float64{6.0, 9.7, 12.0, 13.1},
			Level:   []string{"6", "9+", "12", "13"},
			Version: "maimai GreeN",
		},
	}, nil)
	return c
}

func newEmptyMusicCache() *cache.MusicCache {
	return cache.NewMusicCache(nil)
}

// newTestPlayerService wires a player service on a mocked provider client,
// with the memory tier as the only cache.
func newTestPlayerService(client PlayerClient) *PlayerService {
	return NewPlayerService(&PlayerServiceDeps{
		Client: client,
		Cache:  cache.NewLookupCache(nil, cache.LookupMemoryTTL, cache.LookupRedisTTL),
	})
}
