package modules

import (
	"maidx/api/handlers"
	"maidx/api/services"
)

func initializeScoreHandler(deps *ModuleDependencies) *handlers.ScoreHandler {
	// Initialize the score service and handler.
	scoreDeps := &services.ScoreServiceDeps{
		Music:   deps.MusicCache,
		Players: deps.Players,
	}

	scoreService := services.NewScoreService(scoreDeps)

	scoreHandlerDeps := &handlers.ScoreHandlerDependencies{
		Logger:       deps.Logger,
		ScoreService: scoreService,
	}

	return handlers.NewScoreHandler(scoreHandlerDeps)
}
