package modules

import (
	"maidx/api/handlers"
)

func initializeCatalogueHandler(deps *ModuleDependencies) *handlers.CatalogueHandler {
	catalogueHandlerDeps := &handlers.CatalogueHandlerDependencies{
		Logger:     deps.Logger,
		MusicCache: deps.MusicCache,
		CacheRepo:  deps.CacheRepo,
	}

	return handlers.NewCatalogueHandler(catalogueHandlerDeps)
}
