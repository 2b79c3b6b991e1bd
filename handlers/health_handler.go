package handlers

import (
	"context"
	"net/http"
	"time"

	"h3llo-cms/store"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	kv store.Store
}

func NewHealthHandler(kv store.Store) *HealthHandler {
	return &HealthHandler{kv: kv}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.kv.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
