package modules

import (
	"maidx/api/handlers"
	"maidx/api/services"
)

func initializeRankingHandler(deps *ModuleDependencies) *handlers.RankingHandler {
	// Initialize the ranking service and handler.
	rankingDeps := &services.RankingServiceDeps{
		Client:  services.HTTPRankingClient{},
		Cache:   deps.Lookups,
		Players: deps.Players,
	}

	rankingService := services.NewRankingService(rankingDeps)

	rankingHandlerDeps := &handlers.RankingHandlerDependencies{
		Logger:         deps.Logger,
		RankingService: rankingService,
	}

	return handlers.NewRankingHandler(rankingHandlerDeps)
}
