package handlers

import (
	"maidx/api/commands"
	"maidx/api/services"
	"maidx/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ranking handler.
type RankingHandler struct {
	logger         *logger.NewLogger
	rankingService *services.RankingService
}

type RankingHandlerDependencies struct {
	Logger         *logger.NewLogger
	RankingService *services.RankingService
}

// Create a new instance of the ranking handler.
func NewRankingHandler(deps *RankingHandlerDependencies) *RankingHandler {
	return &RankingHandler{
		logger:         deps.Logger,
		rankingService: deps.RankingService,
	}
}

// Handler for the leaderboard page command.
func (h *RankingHandler) RatingRanking(c *gin.Context) {
	var req CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := commands.ParseRanking(req.Text)

	result, err := h.rankingService.RatingRanking(c.Request.Context(), query.Name, query.Page)
	respond(c, h.logger, result, err)
}

// Handler for the caller's own leaderboard position.
func (h *RankingHandler) MyRank(c *gin.Context) {
	var req CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.rankingService.MyRank(c.Request.Context(), req.TargetID())
	respond(c, h.logger, result, err)
}
