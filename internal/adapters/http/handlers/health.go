package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health is the liveness probe for hosting and monitoring.
func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "Service is healthy")
}
