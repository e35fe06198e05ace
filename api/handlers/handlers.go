package handlers

import (
	"errors"
	"maidx/api/services"
	"maidx/pkg/logger"
	"maidx/pkg/messages"
	"maidx/provider"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CommandRequest is the body every command endpoint binds.
// AtUserID carries an at-mentioned player, taking over the caller's id.
type CommandRequest struct {
	UserID   int64  `json:"userId" binding:"required"`
	AtUserID int64  `json:"atUserId"`
	Text     string `json:"text"`
}

// TargetID returns the player the query is about.
func (r *CommandRequest) TargetID() int64 {
	if r.AtUserID != 0 {
		return r.AtUserID
	}
	return r.UserID
}

// respond collapses a service result into the transport reply. Rejections
// and account resolution failures are normal replies carried as messages,
// only provider failures surface as server errors.
func respond(c *gin.Context, log *logger.NewLogger, payload any, err error) {
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"result": payload})
		return
	}

	var rejection services.Rejection
	if errors.As(err, &rejection) {
		c.JSON(http.StatusOK, gin.H{"message": rejection.Error()})
		return
	}

	if errors.Is(err, provider.ErrUserNotFound) || errors.Is(err, provider.ErrUserDisabledQuery) {
		c.JSON(http.StatusOK, gin.H{"message": err.Error()})
		return
	}

	if log != nil {
		log.Errorf("provider failure on %s: %v", c.FullPath(), err)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": messages.ProviderDown})
}

// rejectUnparsed replies to a command that doesn't match its grammar.
func rejectUnparsed(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "unrecognized command"})
}
