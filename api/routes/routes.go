package routes

import (
	"maidx/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.SongHandler:
			r.registerSongHandler(handler)
		case *handlers.TableHandler:
			r.registerTableHandler(handler)
		case *handlers.LevelHandler:
			r.registerLevelHandler(handler)
		case *handlers.ScoreHandler:
			r.registerScoreHandler(handler)
		case *handlers.RankingHandler:
			r.registerRankingHandler(handler)
		case *handlers.DailyHandler:
			r.registerDailyHandler(handler)
		case *handlers.CatalogueHandler:
			r.registerCatalogueHandler(handler)
		}
	}
}

// Register the song handler.
func (r *Router) registerSongHandler(handler *handlers.SongHandler) {
	song := r.api.Group("/song")
	{
		song.POST("/random", handler.RandomSong)
		song.POST("/recommend", handler.WhatToPlay)
	}
}

// Register the table handler.
func (r *Router) registerTableHandler(handler *handlers.TableHandler) {
	table := r.api.Group("/table")
	{
		table.POST("/rating", handler.RatingTable)
		table.POST("/performance", handler.RatingTablePerformance)
		table.POST("/plate", handler.PlateProgress)
	}
}

// Register the level handler.
func (r *Router) registerLevelHandler(handler *handlers.LevelHandler) {
	level := r.api.Group("/level")
	{
		level.POST("/process", handler.LevelProcess)
		level.POST("/achievements", handler.AchievementList)
	}
}

// Register the score handler.
func (r *Router) registerScoreHandler(handler *handlers.ScoreHandler) {
	score := r.api.Group("/score")
	{
		score.POST("/rise", handler.RiseScore)
	}
}

// Register the ranking handler.
func (r *Router) registerRankingHandler(handler *handlers.RankingHandler) {
	ranking := r.api.Group("/ranking")
	{
		ranking.POST("", handler.RatingRanking)
		ranking.POST("/mine", handler.MyRank)
	}
}

// Register the daily handler.
func (r *Router) registerDailyHandler(handler *handlers.DailyHandler) {
	daily := r.api.Group("/daily")
	{
		daily.POST("", handler.Fortune)
	}
}

// Register the catalogue handler.
func (r *Router) registerCatalogueHandler(handler *handlers.CatalogueHandler) {
	catalogue := r.api.Group("/catalogue")
	{
		catalogue.POST("/refresh", handler.Refresh)
		catalogue.GET("/music/:id", handler.GetMusic)
		catalogue.GET("/alias", handler.SearchAlias)
	}
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
