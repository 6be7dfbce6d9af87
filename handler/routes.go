package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// InitAppRoutes registers the intelligence API surface.
func InitAppRoutes(r *gin.Engine) {
	r.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/storepulse/v1")
	v1.GET("/intelligence/dashboard", IntelligenceDashboardHandler)
	v1.GET("/intelligence/dashboard/export", IntelligenceDashboardExportHandler)
}
