package handlers

import (
	"maidx/api/commands"
	"maidx/api/services"
	"maidx/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Score handler.
type ScoreHandler struct {
	logger       *logger.NewLogger
	scoreService *services.ScoreService
}

type ScoreHandlerDependencies struct {
	Logger       *logger.NewLogger
	ScoreService *services.ScoreService
}

// Create a new instance of the score handler.
func NewScoreHandler(deps *ScoreHandlerDependencies) *ScoreHandler {
	return &ScoreHandler{
		logger:       deps.Logger,
		scoreService: deps.ScoreService,
	}
}

// Handler for the score raise recommendation command.
func (h *ScoreHandler) RiseScore(c *gin.Context) {
	var req CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query, matched := commands.ParseRiseScore(req.Text)
	if !matched {
		rejectUnparsed(c)
		return
	}

	qqid := req.TargetID()
	if query.Username != "" {
		qqid = 0
	}

	result, err := h.scoreService.RiseScore(c.Request.Context(), qqid, query.Username, query.Level, query.Score)
	respond(c, h.logger, result, err)
}
