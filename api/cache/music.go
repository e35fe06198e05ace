package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maidx/api/filters"
	"maidx/api/repositories"
	"maidx/pkg/messages"
	"maidx/pkg/models/music"
	"maidx/pkg/redis"
	"maidx/provider"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

var (
	ErrEmptyCatalogue    = errors.New("no music matches the given filter")
	ErrMusicNotFound     = errors.New("music not found on the current catalogue")
	ErrRefreshInProgress = errors.New(messages.OperationInProgress)
)

const (
	musicKeyPrefix = "maidx:music:"
	aliasCacheKey  = "maidx:alias"
)

// MusicCache holds the current catalogue snapshot.
// Queries read an immutable snapshot, a refresh builds a new one and swaps
// it in atomically, so no query ever observes a partial update.
type MusicCache struct {
	redis      *redis.RedisClient
	mu         sync.RWMutex
	snap       *catalogueSnapshot
	refreshing atomic.Bool
}

// Immutable view of the catalogue. Musics are kept sorted by id.
type catalogueSnapshot struct {
	musics  []*music.Music
	byID    map[int]*music.Music
	aliases map[string][]int
}

// Singleton.
var (
	instance *MusicCache
	once     sync.Once
)

// GetMusicCache returns the process-wide music cache instance.
func GetMusicCache() *MusicCache {
	once.Do(func() {
		instance = NewMusicCache(redis.GetClient())
	})

	return instance
}

// NewMusicCache creates a music cache with an empty snapshot.
func NewMusicCache(redisClient *redis.RedisClient) *MusicCache {
	cache := &MusicCache{redis: redisClient}
	cache.Load(nil, nil)
	return cache
}

// Load builds a new snapshot from the given musics and aliases and swaps it
// into place.
func (c *MusicCache) Load(musics []*music.Music, aliases []*provider.Alias) {
	snap := &catalogueSnapshot{
		musics:  make([]*music.Music, len(musics)),
		byID:    make(map[int]*music.Music, len(musics)),
		aliases: make(map[string][]int),
	}

	copy(snap.musics, musics)
	sort.Slice(snap.musics, func(i, j int) bool {
		return snap.musics[i].ID < snap.musics[j].ID
	})

	for _, m := range snap.musics {
		snap.byID[m.ID] = m
	}

	for _, alias := range aliases {
		// Skip aliases pointing at charts removed from the catalogue.
		if _, exists := snap.byID[alias.MusicID]; !exists {
			continue
		}
		for _, name := range alias.Aliases {
			key := strings.ToLower(name)
			snap.aliases[key] = append(snap.aliases[key], alias.MusicID)
		}
	}

	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()
}

// Refresh fetches the full catalogue and alias table from the provider and
// swaps in a new snapshot. Any fetch or parse failure leaves the previous
// snapshot untouched. A refresh already in progress makes this a no-op.
func (c *MusicCache) Refresh(ctx context.Context, repo repositories.CacheRepository) error {
	if !c.refreshing.CompareAndSwap(false, true) {
		return ErrRefreshInProgress
	}
	defer c.refreshing.Store(false)

	musics, err := provider.MusicData(ctx)
	if err != nil {
		return fmt.Errorf("couldn't fetch the music data: %w", err)
	}

	aliases, err := provider.MusicAlias(ctx)
	if err != nil {
		return fmt.Errorf("couldn't fetch the alias table: %w", err)
	}

	c.Load(musics, aliases)

	// Persistence is best effort, it only affects the next warm start.
	c.persist(ctx, repo, musics, aliases)

	return nil
}

// Initialize warm starts the snapshot from the Redis copy, falling back to
// the database backup when the Redis is down.
func (c *MusicCache) Initialize(ctx context.Context, repo repositories.CacheRepository) error {
	var rawMusics []string

	keys, err := c.redis.GetKeysByPrefix(ctx, musicKeyPrefix)
	if err == nil && len(keys) > 0 {
		for _, key := range keys {
			value, err := c.redis.Get(ctx, key)
			if err != nil {
				continue
			}
			rawMusics = append(rawMusics, value)
		}
	} else if repo != nil {
		// Get the stored copy from the database fallback.
		// It will be way slower, but only runs once at boot.
		backups, err := repo.GetByPrefix(musicKeyPrefix)
		if err != nil {
			return fmt.Errorf("error getting from the database fallback: %w", err)
		}
		for _, backup := range backups {
			rawMusics = append(rawMusics, backup.CacheValue)
		}
	}

	if len(rawMusics) == 0 {
		return errors.New("no stored catalogue available")
	}

	musics := make([]*music.Music, 0, len(rawMusics))
	for _, raw := range rawMusics {
		var m music.Music
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			return fmt.Errorf("failed to unmarshal stored music: %w", err)
		}
		musics = append(musics, &m)
	}

	aliases, _ := c.loadAliases(ctx, repo)

	c.Load(musics, aliases)

	return nil
}

// loadAliases reads the stored alias table, from Redis or the fallback.
func (c *MusicCache) loadAliases(ctx context.Context, repo repositories.CacheRepository) ([]*provider.Alias, error) {
	raw, err := c.redis.Get(ctx, aliasCacheKey)
	if err != nil && repo != nil {
		raw, err = repo.GetKey(aliasCacheKey)
	}
	if err != nil {
		return nil, err
	}

	var aliases []*provider.Alias
	if err := json.Unmarshal([]byte(raw), &aliases); err != nil {
		return nil, err
	}

	return aliases, nil
}

// persist saves the fetched catalogue on the Redis and the database backup.
func (c *MusicCache) persist(ctx context.Context, repo repositories.CacheRepository, musics []*music.Music, aliases []*provider.Alias) {
	for _, m := range musics {
		raw, err := json.Marshal(m)
		if err != nil {
			continue
		}

		key := musicKeyPrefix + strconv.Itoa(m.ID)
		c.redis.Set(ctx, key, raw, 0)
		if repo != nil {
			repo.SetKey(key, string(raw))
		}
	}

	if raw, err := json.Marshal(aliases); err == nil {
		c.redis.Set(ctx, aliasCacheKey, raw, 0)
		if repo != nil {
			repo.SetKey(aliasCacheKey, string(raw))
		}
	}
}

// current returns the active snapshot.
func (c *MusicCache) current() *catalogueSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// All returns the current snapshot contents, sorted by id.
// The returned slice must not be mutated.
func (c *MusicCache) All() []*music.Music {
	return c.current().musics
}

// Size returns the number of musics on the current snapshot.
func (c *MusicCache) Size() int {
	return len(c.current().musics)
}

// Lookup returns the music with the given id.
func (c *MusicCache) Lookup(id int) (*music.Music, error) {
	m, exists := c.current().byID[id]
	if !exists {
		return nil, ErrMusicNotFound
	}
	return m, nil
}

// Filter returns every music matching the filter. An empty result is a
// valid outcome, not an error.
func (c *MusicCache) Filter(f *filters.MusicFilter) []*music.Music {
	var matched []*music.Music
	for _, m := range c.current().musics {
		if f.Matches(m) {
			matched = append(matched, m)
		}
	}
	return matched
}

// Random picks a uniform random music among the ones matching the filter.
func (c *MusicCache) Random(f *filters.MusicFilter) (*music.Music, error) {
	matched := c.Filter(f)
	if len(matched) == 0 {
		return nil, ErrEmptyCatalogue
	}
	return matched[rand.Intn(len(matched))], nil
}

// ByAlias returns the musics known under the given alternate name.
func (c *MusicCache) ByAlias(name string) []*music.Music {
	snap := c.current()

	var matched []*music.Music
	for _, id := range snap.aliases[strings.ToLower(name)] {
		if m, exists := snap.byID[id]; exists {
			matched = append(matched, m)
		}
	}
	return matched
}
