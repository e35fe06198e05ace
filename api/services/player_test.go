package services

import (
	"context"
	"encoding/json"
	"maidx/api/cache"
	"maidx/provider"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBestCachesSuccess(t *testing.T) {
	client := new(mockPlayerClient)
	service := newTestPlayerService(client)

	client.On("QueryUserBest", mock.Anything, int64(1234), "").Return(&provider.PlayerBest{
		Username: "tester",
	}, nil).Once()

	best, err := service.Best(context.Background(), 1234, "")
	assert.NoError(t, err)
	assert.Equal(t, "tester", best.Username)

	// The second lookup never reaches the provider.
	best, err = service.Best(context.Background(), 1234, "")
	assert.NoError(t, err)
	assert.Equal(t, "tester", best.Username)

	client.AssertExpectations(t)
}

func TestBestFailuresAreNotCached(t *testing.T) {
	client := new(mockPlayerClient)
	service := newTestPlayerService(client)

	client.On("QueryUserBest", mock.Anything, int64(1234), "").Return(nil, provider.ErrUserNotFound).Twice()

	_, err := service.Best(context.Background(), 1234, "")
	assert.ErrorIs(t, err, provider.ErrUserNotFound)

	// A fresh bind must be visible right away, so the miss is refetched.
	_, err = service.Best(context.Background(), 1234, "")
	assert.ErrorIs(t, err, provider.ErrUserNotFound)

	client.AssertExpectations(t)
}

func TestBestFromRedis(t *testing.T) {
	client := new(mockPlayerClient)
	redis := new(mockLookupRedis)
	service := NewPlayerService(&PlayerServiceDeps{
		Client: client,
		Cache:  cache.NewLookupCache(redis, cache.LookupMemoryTTL, cache.LookupRedisTTL),
	})

	stored, err := json.Marshal(&provider.PlayerBest{Username: "tester"})
	assert.NoError(t, err)
	redis.On("Get", mock.Anything, "maidx:player:best:qq_1234").Return(string(stored), nil)

	best, err := service.Best(context.Background(), 1234, "")
	assert.NoError(t, err)
	assert.Equal(t, "tester", best.Username)

	// The Redis copy keeps the provider out of the path.
	client.AssertNotCalled(t, "QueryUserBest")
}

func TestRecordsKeyedByUsername(t *testing.T) {
	client := new(mockPlayerClient)
	service := newTestPlayerService(client)

	client.On("QueryUserAll", mock.Anything, int64(0), "somebody").Return(&provider.PlayerRecords{
		Username: "somebody",
	}, nil).Once()
	client.On("QueryUserAll", mock.Anything, int64(1234), "").Return(&provider.PlayerRecords{
		Username: "tester",
	}, nil).Once()

	records, err := service.Records(context.Background(), 0, "somebody")
	assert.NoError(t, err)
	assert.Equal(t, "somebody", records.Username)

	// A different key misses the cache and hits the provider again.
	records, err = service.Records(context.Background(), 1234, "")
	assert.NoError(t, err)
	assert.Equal(t, "tester", records.Username)

	client.AssertExpectations(t)
}
