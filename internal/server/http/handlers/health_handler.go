package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ping handles GET /api/ping. Uptime monitors expect a fixed body.
func Ping(c *gin.Context) {
	c.String(http.StatusOK, "Server is alive")
}
