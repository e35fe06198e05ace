package services

import (
	"context"
	"fmt"
	"maidx/api/cache"
	"maidx/provider"
)

// PlayerClient is the score provider surface used by the services.
type PlayerClient interface {
	QueryUserBest(ctx context.Context, qqid int64, username string) (*provider.PlayerBest, error)
	QueryUserAll(ctx context.Context, qqid int64, username string) (*provider.PlayerRecords, error)
}

// HTTPPlayerClient talks to the real score provider.
type HTTPPlayerClient struct{}

func (HTTPPlayerClient) QueryUserBest(ctx context.Context, qqid int64, username string) (*provider.PlayerBest, error) {
	return provider.QueryUserBest(ctx, qqid, username)
}

func (HTTPPlayerClient) QueryUserAll(ctx context.Context, qqid int64, username string) (*provider.PlayerRecords, error) {
	return provider.QueryUserAll(ctx, qqid, username)
}

// PlayerService fetches player records per request, behind the lookup
// cache on successful responses. Account resolution failures are never
// cached, so a fresh bind is visible immediately.
type PlayerService struct {
	client PlayerClient
	cache  *cache.LookupCache
}

// PlayerServiceDeps is the dependency list for the player service.
type PlayerServiceDeps struct {
	Client PlayerClient
	Cache  *cache.LookupCache
}

// NewPlayerService creates a player service.
func NewPlayerService(deps *PlayerServiceDeps) *PlayerService {
	return &PlayerService{
		client: deps.Client,
		cache:  deps.Cache,
	}
}

// Best returns the b50 payload of a player, by qq id or username.
func (ps *PlayerService) Best(ctx context.Context, qqid int64, username string) (*provider.PlayerBest, error) {
	key := playerKey("best", qqid, username)
	if cached := ps.cache.Get(key); cached != nil {
		return cached.(*provider.PlayerBest), nil
	}

	var fromRedis provider.PlayerBest
	if ps.cache.GetJSON(ctx, key, &fromRedis) {
		ps.cache.Set(key, &fromRedis)
		return &fromRedis, nil
	}

	best, err := ps.client.QueryUserBest(ctx, qqid, username)
	if err != nil {
		return nil, err
	}

	ps.cache.Set(key, best)
	ps.cache.PutJSON(ctx, key, best)
	return best, nil
}

// Records returns the complete record list of a player.
func (ps *PlayerService) Records(ctx context.Context, qqid int64, username string) (*provider.PlayerRecords, error) {
	key := playerKey("records", qqid, username)
	if cached := ps.cache.Get(key); cached != nil {
		return cached.(*provider.PlayerRecords), nil
	}

	var fromRedis provider.PlayerRecords
	if ps.cache.GetJSON(ctx, key, &fromRedis) {
		ps.cache.Set(key, &fromRedis)
		return &fromRedis, nil
	}

	records, err := ps.client.QueryUserAll(ctx, qqid, username)
	if err != nil {
		return nil, err
	}

	ps.cache.Set(key, records)
	ps.cache.PutJSON(ctx, key, records)
	return records, nil
}

// playerKey generates the cache key for a player lookup.
func playerKey(kind string, qqid int64, username string) string {
	if username != "" {
		return fmt.Sprintf("maidx:player:%s:name_%s", kind, username)
	}
	return fmt.Sprintf("maidx:player:%s:qq_%d", kind, qqid)
}
