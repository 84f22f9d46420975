// Package handlers adapts the bookkeeping core to JSON over HTTP. It is the
// UI collaborator surface: all domain rules live below it.
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mazraa/farmbook/internal/domain/models"
	"github.com/mazraa/farmbook/internal/store"
)

// Handler carries the record store and the wall clock into the route
// handlers. The clock stays up here so the core remains a function of its
// explicit asOf inputs.
type Handler struct {
	store  *store.Store
	logger *zap.Logger
	now    func() time.Time
}

// New constructs the HTTP handler adapter.
func New(st *store.Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: st, logger: logger, now: time.Now}
}

// asOf resolves the optional asOf query parameter, defaulting to today.
func (h *Handler) asOf(c *gin.Context) (models.Date, bool) {
	raw := c.Query("asOf")
	if raw == "" {
		return models.DateOf(h.now()), true
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asOf must be YYYY-MM-DD"})
		return models.Date{}, false
	}
	return d, true
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return 0, false
	}
	return id, true
}

// respondMutation renders the outcome of a store mutation. A stale flush is
// still a successful mutation; the client just learns the saved copy lags.
func (h *Handler) respondMutation(c *gin.Context, okStatus int, recordValue any, err error) {
	if err == nil {
		c.JSON(okStatus, gin.H{"record": recordValue, "persisted": true})
		return
	}

	if errors.Is(err, store.ErrStalePersistence) {
		h.logger.Warn("mutation applied but not persisted", zap.Error(err))
		c.JSON(okStatus, gin.H{"record": recordValue, "persisted": false})
		return
	}

	var validationErr models.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		return
	}

	var notFoundErr store.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
		return
	}

	h.logger.Error("mutation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// respondRemoval renders the outcome of an idempotent delete.
func (h *Handler) respondRemoval(c *gin.Context, err error) {
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"persisted": true})
		return
	}
	if errors.Is(err, store.ErrStalePersistence) {
		h.logger.Warn("removal applied but not persisted", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"persisted": false})
		return
	}
	h.logger.Error("removal failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
