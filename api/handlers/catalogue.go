package handlers

import (
	"errors"
	"maidx/api/cache"
	"maidx/api/repositories"
	"maidx/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Catalogue handler, covering the manual refresh and the lookups.
type CatalogueHandler struct {
	logger     *logger.NewLogger
	musicCache *cache.MusicCache
	cacheRepo  repositories.CacheRepository
}

type CatalogueHandlerDependencies struct {
	Logger     *logger.NewLogger
	MusicCache *cache.MusicCache
	CacheRepo  repositories.CacheRepository
}

// Create a new instance of the catalogue handler.
func NewCatalogueHandler(deps *CatalogueHandlerDependencies) *CatalogueHandler {
	return &CatalogueHandler{
		logger:     deps.Logger,
		musicCache: deps.MusicCache,
		cacheRepo:  deps.CacheRepo,
	}
}

// Handler for the manual catalogue refresh.
func (h *CatalogueHandler) Refresh(c *gin.Context) {
	if err := h.musicCache.Refresh(c.Request.Context(), h.cacheRepo); err != nil {
		if errors.Is(err, cache.ErrRefreshInProgress) {
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
			return
		}

		h.logger.Errorf("catalogue refresh failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalogue refresh failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "catalogue updated", "size": h.musicCache.Size()})
}

// Handler for the music lookup by id.
func (h *CatalogueHandler) GetMusic(c *gin.Context) {
	var uri struct {
		ID int `uri:"id" binding:"required"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.musicCache.Lookup(uri.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": m})
}

// Handler for the music lookup by alternate name.
func (h *CatalogueHandler) SearchAlias(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing name parameter"})
		return
	}

	matched := h.musicCache.ByAlias(name)
	c.JSON(http.StatusOK, gin.H{"result": matched})
}
