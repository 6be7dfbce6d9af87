package middleware

import (
	"time"

	C "storepulse/config"
	U "storepulse/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// scope constants.
const SCOPE_REQ_ID = "reqId"

// RequestIdGenerator tags every request with a uuid so log lines across the
// dashboard build can be correlated.
func RequestIdGenerator() gin.HandlerFunc {
	return func(c *gin.Context) {
		U.SetScope(c, SCOPE_REQ_ID, uuid.New().String())
		c.Next()
	}
}

// CustomCors - customised cors configuration based on environment.
func CustomCors() gin.HandlerFunc {
	return func(c *gin.Context) {
		corsConfig := cors.DefaultConfig()
		if C.IsDevelopment() {
			corsConfig.AllowOrigins = []string{"http://localhost:8080", "http://localhost:3000"}
		} else {
			corsConfig.AllowAllOrigins = true
		}
		cors.New(corsConfig)(c)
		c.Next()
	}
}

// Logger writes one structured line per request.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"reqId":   U.GetScopeByKeyAsString(c, SCOPE_REQ_ID),
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("Processed request.")
	}
}

func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}
