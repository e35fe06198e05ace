package modules

import (
	"maidx/api/handlers"
	"maidx/api/services"
)

func initializeTableHandler(deps *ModuleDependencies) *handlers.TableHandler {
	// Initialize the table service and handler.
	tableDeps := &services.TableServiceDeps{
		Music:   deps.MusicCache,
		Players: deps.Players,
	}

	tableService := services.NewTableService(tableDeps)

	tableHandlerDeps := &handlers.TableHandlerDependencies{
		Logger:       deps.Logger,
		TableService: tableService,
	}

	return handlers.NewTableHandler(tableHandlerDeps)
}
