package modules

import (
	"maidx/api/handlers"
	"maidx/api/services"
)

func initializeLevelHandler(deps *ModuleDependencies) *handlers.LevelHandler {
	// Initialize the level service and handler.
	levelDeps := &services.LevelServiceDeps{
		Music:   deps.MusicCache,
		Players: deps.Players,
	}

	levelService := services.NewLevelService(levelDeps)

	levelHandlerDeps := &handlers.LevelHandlerDependencies{
		Logger:       deps.Logger,
		LevelService: levelService,
	}

	return handlers.NewLevelHandler(levelHandlerDeps)
}
