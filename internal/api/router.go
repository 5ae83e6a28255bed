package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDKey = "request_id"

// NewRouter wires middleware and routes. Every response carries an
// X-Request-ID header and every request produces one access-log line.
func NewRouter(h *Handlers, allowedOrigins []string, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(accessLog(logger))
	r.Use(cors.New(corsConfig(allowedOrigins)))

	r.GET("/", h.Index)
	r.GET("/api/health", h.Health)
	r.GET("/api/system", h.System)
	r.GET("/api/cpu", h.CPU)
	r.GET("/api/memory", h.Memory)
	r.GET("/api/disks", h.Disks)
	r.GET("/api/networks", h.Networks)
	r.GET("/api/processes", h.Processes)
	r.POST("/api/processes/search", h.SearchProcesses)
	r.GET("/api/full-report", h.FullReport)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// requestID attaches a UUID to the request context and response headers,
// reusing the caller's X-Request-ID when present.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// accessLog emits one structured line per request.
func accessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", c.GetString(requestIDKey)))
	}
}
