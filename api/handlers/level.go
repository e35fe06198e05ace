package handlers

import (
	"maidx/api/commands"
	"maidx/api/services"
	"maidx/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Level handler, covering the progress and achievement listings.
type LevelHandler struct {
	logger       *logger.NewLogger
	levelService *services.LevelService
}

type LevelHandlerDependencies struct {
	Logger       *logger.NewLogger
	LevelService *services.LevelService
}

// Create a new instance of the level handler.
func NewLevelHandler(deps *LevelHandlerDependencies) *LevelHandler {
	return &LevelHandler{
		logger:       deps.Logger,
		levelService: deps.LevelService,
	}
}

// Handler for the level progress listing command.
func (h *LevelHandler) LevelProcess(c *gin.Context) {
	var req CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query, matched := commands.ParseLevelProcess(req.Text)
	if !matched {
		rejectUnparsed(c)
		return
	}

	qqid := req.TargetID()
	if query.Username != "" {
		qqid = 0
	}

	result, err := h.levelService.LevelProcess(c.Request.Context(), qqid, query.Username, query.Level, query.Plan, query.Category, query.Page)
	respond(c, h.logger, result, err)
}

// Handler for the achievement listing command.
func (h *LevelHandler) AchievementList(c *gin.Context) {
	var req CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query, matched := commands.ParseAchievementList(req.Text)
	if !matched {
		rejectUnparsed(c)
		return
	}

	qqid := req.TargetID()
	if query.Username != "" {
		qqid = 0
	}

	result, err := h.levelService.LevelAchievementList(c.Request.Context(), qqid, query.Username, query.Level, query.Page)
	respond(c, h.logger, result, err)
}
