package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/platform/ctxutil"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/platform/logger"
)

type HealthHandler struct {
	graph GraphReader
	log   *logger.Logger
}

func NewHealthHandler(graph GraphReader, log *logger.Logger) *HealthHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &HealthHandler{graph: graph, log: log.With("handler", "HealthHandler")}
}

// GET /healthcheck
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	n, err := h.graph.CountNodes(ctx)
	if err != nil {
		h.log.Warn("graph health check failed", append(ctxutil.LogFields(ctx), "error", err)...)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":             "unhealthy",
			"database_connected": false,
			"error":              err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":             "healthy",
		"database_connected": true,
		"node_count":         n,
	})
}
