package modules

import (
	"maidx/api/handlers"
	"maidx/api/services"
)

func initializeSongHandler(deps *ModuleDependencies) *handlers.SongHandler {
	// Initialize the song service and handler.
	songDeps := &services.SongServiceDeps{
		Music:   deps.MusicCache,
		Players: deps.Players,
	}

	songService := services.NewSongService(songDeps)

	songHandlerDeps := &handlers.SongHandlerDependencies{
		Logger:      deps.Logger,
		SongService: songService,
	}

	return handlers.NewSongHandler(songHandlerDeps)
}
