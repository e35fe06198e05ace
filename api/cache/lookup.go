package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// TTLs of the two lookup tiers. Memory stays short so replies follow a
// fresh play quickly, Redis carries the payload across instances.
const (
	LookupMemoryTTL = 2 * time.Minute
	LookupRedisTTL  = 5 * time.Minute
)

// Upper bound on the Redis tier, a slow Redis degrades to a provider
// refetch instead of stalling the reply.
const redisLookupTimeout = 200 * time.Millisecond

// LookupRedis is the Redis surface of the lookup cache.
type LookupRedis interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// LookupCache sits in front of the score and ranking providers: a short
// lived memory tier over an optional Redis tier holding the JSON form of
// the payload. Only successful lookups are ever stored.
type LookupCache struct {
	memoryTTL     time.Duration
	redisTTL      time.Duration
	redis         LookupRedis
	entries       sync.Map
	cleanupTicker *time.Ticker
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
}

// Single memory tier entry.
type lookupEntry struct {
	value  any
	expiry time.Time
}

// NewLookupCache creates a lookup cache. A nil redis leaves the memory
// tier as the only one.
func NewLookupCache(redis LookupRedis, memoryTTL time.Duration, redisTTL time.Duration) *LookupCache {
	ctx, cancel := context.WithCancel(context.Background())
	lc := &LookupCache{
		memoryTTL:     memoryTTL,
		redisTTL:      redisTTL,
		redis:         redis,
		cleanupTicker: time.NewTicker(5 * time.Minute),
		ctx:           ctx,
		cancel:        cancel,
	}
	lc.startCleanupWorker()

	return lc
}

// startCleanupWorker starts the background worker for memory cleaning.
func (lc *LookupCache) startCleanupWorker() {
	lc.wg.Add(1)
	go func() {
		defer lc.wg.Done()
		for {
			select {
			case <-lc.cleanupTicker.C:
				lc.sweep()
			case <-lc.ctx.Done():
				return
			}
		}
	}()
}

// sweep drops every expired memory entry.
func (lc *LookupCache) sweep() {
	now := time.Now()
	lc.entries.Range(func(key, value any) bool {
		if now.After(value.(*lookupEntry).expiry) {
			lc.entries.Delete(key)
		}
		return true
	})
}

// Close shutdown the cleanup worker.
func (lc *LookupCache) Close() {
	lc.cancel()
	lc.cleanupTicker.Stop()
	lc.wg.Wait()
}

// Get returns the memory tier value of the key, or nil.
func (lc *LookupCache) Get(key string) any {
	value, exists := lc.entries.Load(key)
	if !exists {
		return nil
	}

	entry := value.(*lookupEntry)
	if time.Now().After(entry.expiry) {
		lc.entries.Delete(key)
		return nil
	}

	return entry.value
}

// Set stores the value on the memory tier.
func (lc *LookupCache) Set(key string, value any) {
	lc.entries.Store(key, &lookupEntry{
		value:  value,
		expiry: time.Now().Add(lc.memoryTTL),
	})
}

// GetJSON reads the Redis tier into dest. A miss, a slow Redis or a
// broken payload all read as a plain miss.
func (lc *LookupCache) GetJSON(ctx context.Context, key string, dest any) bool {
	if lc.redis == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, redisLookupTimeout)
	defer cancel()

	raw, err := lc.redis.Get(ctx, key)
	if err != nil || raw == "" {
		return false
	}

	return json.Unmarshal([]byte(raw), dest) == nil
}

// PutJSON stores the JSON form of the value on the Redis tier.
func (lc *LookupCache) PutJSON(ctx context.Context, key string, value any) {
	if lc.redis == nil {
		return
	}

	if raw, err := json.Marshal(value); err == nil {
		lc.redis.Set(ctx, key, string(raw), lc.redisTTL)
	}
}
