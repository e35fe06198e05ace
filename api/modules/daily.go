package modules

import (
	"maidx/api/handlers"
	"maidx/api/services"
)

func initializeDailyHandler(deps *ModuleDependencies) *handlers.DailyHandler {
	// Initialize the daily service and handler.
	dailyDeps := &services.DailyServiceDeps{
		Music: deps.MusicCache,
	}

	dailyService := services.NewDailyService(dailyDeps)

	dailyHandlerDeps := &handlers.DailyHandlerDependencies{
		Logger:       deps.Logger,
		DailyService: dailyService,
	}

	return handlers.NewDailyHandler(dailyHandlerDeps)
}
