package handlers

import (
	"maidx/api/commands"
	"maidx/api/services"
	"maidx/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Table handler, covering the rating tables and the plates.
type TableHandler struct {
	logger       *logger.NewLogger
	tableService *services.TableService
}

type TableHandlerDependencies struct {
	Logger       *logger.NewLogger
	TableService *services.TableService
}

// Create a new instance of the table handler.
func NewTableHandler(deps *TableHandlerDependencies) *TableHandler {
	return &TableHandler{
		logger:       deps.Logger,
		tableService: deps.TableService,
	}
}

// Handler for the rating definition table command.
func (h *TableHandler) RatingTable(c *gin.Context) {
	var req CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query, matched := commands.ParseRatingTable(req.Text)
	if !matched {
		rejectUnparsed(c)
		return
	}

	result, err := h.tableService.RatingTable(query.Level)
	respond(c, h.logger, result, err)
}

// Handler for the per-player completion table command.
func (h *TableHandler) RatingTablePerformance(c *gin.Context) {
	var req CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query, matched := commands.ParseRatingTablePerformance(req.Text)
	if !matched {
		rejectUnparsed(c)
		return
	}

	result, err := h.tableService.RatingTablePerformance(c.Request.Context(), req.TargetID(), query.Level)
	respond(c, h.logger, result, err)
}

// Handler for the plate progress and plate table commands.
func (h *TableHandler) PlateProgress(c *gin.Context) {
	var req CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query, matched := commands.ParsePlate(req.Text)
	if !matched {
		rejectUnparsed(c)
		return
	}

	// An explicit username on the text wins over any id lookup.
	qqid := req.TargetID()
	if query.Username != "" {
		qqid = 0
	}

	result, err := h.tableService.PlateProgress(c.Request.Context(), qqid, query.Username, query.Version, query.Plan)
	respond(c, h.logger, result, err)
}
