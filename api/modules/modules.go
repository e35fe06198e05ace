package modules

import (
	"context"
	"fmt"
	"maidx/api/cache"
	"maidx/api/handlers"
	"maidx/api/repositories"
	"maidx/api/services"
	"maidx/pkg/logger"
	"maidx/pkg/redis"

	"github.com/gin-gonic/gin"
)

// Module containing the necessary handlers.
type Module struct {
	Router           *gin.Engine
	SongHandler      *handlers.SongHandler
	TableHandler     *handlers.TableHandler
	LevelHandler     *handlers.LevelHandler
	ScoreHandler     *handlers.ScoreHandler
	RankingHandler   *handlers.RankingHandler
	DailyHandler     *handlers.DailyHandler
	CatalogueHandler *handlers.CatalogueHandler
}

// ModuleDependencies holds everything shared across the handlers.
type ModuleDependencies struct {
	Logger     *logger.NewLogger
	MusicCache *cache.MusicCache
	CacheRepo  repositories.CacheRepository
	Lookups    *cache.LookupCache
	Players    *services.PlayerService
}

// Create a new module with all the necessary handlers initialized.
func NewModule(log *logger.NewLogger) (*Module, error) {
	router := gin.Default()

	cacheRepo, err := repositories.NewCacheRepository()
	if err != nil {
		return nil, fmt.Errorf("couldn't create the cache repository: %w", err)
	}

	// Warm start the catalogue from the stored copy. A miss is fine, the
	// first refresh fills it.
	musicCache := cache.GetMusicCache()
	if err := musicCache.Initialize(context.Background(), cacheRepo); err != nil {
		log.Warnf("catalogue warm start unavailable: %v", err)
	}

	redisClient := redis.GetClient()

	lookups := cache.NewLookupCache(redisClient, cache.LookupMemoryTTL, cache.LookupRedisTTL)
	players := services.NewPlayerService(&services.PlayerServiceDeps{
		Client: services.HTTPPlayerClient{},
		Cache:  lookups,
	})

	deps := &ModuleDependencies{
		Logger:     log,
		MusicCache: musicCache,
		CacheRepo:  cacheRepo,
		Lookups:    lookups,
		Players:    players,
	}

	// Return the module with all handlers.
	return &Module{
		Router:           router,
		SongHandler:      initializeSongHandler(deps),
		TableHandler:     initializeTableHandler(deps),
		LevelHandler:     initializeLevelHandler(deps),
		ScoreHandler:     initializeScoreHandler(deps),
		RankingHandler:   initializeRankingHandler(deps),
		DailyHandler:     initializeDailyHandler(deps),
		CatalogueHandler: initializeCatalogueHandler(deps),
	}, nil
}
