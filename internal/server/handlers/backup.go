package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mazraa/farmbook/internal/domain/models"
	"github.com/mazraa/farmbook/internal/store"
)

// Export returns the whole state as the flat backup object, one key per
// collection. The field names match what the app has always written, so old
// backups and new ones stay interchangeable.
func (h *Handler) Export(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Export())
}

// Import replaces the whole state with the posted backup.
func (h *Handler) Import(c *gin.Context) {
	var snap models.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid backup payload"})
		return
	}

	err := h.store.Import(c.Request.Context(), snap)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"persisted": true})
		return
	}
	if errors.Is(err, store.ErrStalePersistence) {
		h.logger.Warn("import applied but not persisted", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"persisted": false})
		return
	}
	h.logger.Error("import failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
