package handlers

import (
	"maidx/api/commands"
	"maidx/api/services"
	"maidx/pkg/logger"
	"maidx/pkg/messages"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Song handler.
type SongHandler struct {
	logger      *logger.NewLogger
	songService *services.SongService
}

type SongHandlerDependencies struct {
	Logger      *logger.NewLogger
	SongService *services.SongService
}

// Create a new instance of the song handler.
func NewSongHandler(deps *SongHandlerDependencies) *SongHandler {
	return &SongHandler{
		logger:      deps.Logger,
		songService: deps.SongService,
	}
}

// Handler for the random chart command.
func (h *SongHandler) RandomSong(c *gin.Context) {
	var req CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query, matched := commands.ParseRandomSong(req.Text)
	if !matched {
		c.JSON(http.StatusOK, gin.H{"message": messages.RandomSyntaxError})
		return
	}

	result, err := h.songService.RandomSong(query.Type, query.Band, query.Level)
	respond(c, h.logger, result, err)
}

// Handler for the play recommendation command.
func (h *SongHandler) WhatToPlay(c *gin.Context) {
	var req CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query, matched := commands.ParseWhatToPlay(req.Text)
	if !matched {
		rejectUnparsed(c)
		return
	}

	result, err := h.songService.WhatToPlay(c.Request.Context(), req.UserID, query.Text)
	respond(c, h.logger, result, err)
}
