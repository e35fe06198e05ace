package handlers

import (
	"maidx/api/services"
	"maidx/pkg/logger"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Daily handler.
type DailyHandler struct {
	logger       *logger.NewLogger
	dailyService *services.DailyService
}

type DailyHandlerDependencies struct {
	Logger       *logger.NewLogger
	DailyService *services.DailyService
}

// Create a new instance of the daily handler.
func NewDailyHandler(deps *DailyHandlerDependencies) *DailyHandler {
	return &DailyHandler{
		logger:       deps.Logger,
		dailyService: deps.DailyService,
	}
}

// Handler for the daily fortune command.
func (h *DailyHandler) Fortune(c *gin.Context) {
	var req CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fortune := h.dailyService.Fortune(req.UserID, time.Now())
	c.JSON(http.StatusOK, gin.H{"result": fortune})
}
