package ui

import (
	"net/http"
	"time"

	"spacexdash/internal"
	"spacexdash/ui/middleware"

	"github.com/gin-gonic/gin"
)

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.RequestID())
	s.router.Use(slowRequestLogger(s.log.Named("Performance"), time.Second))

	s.log.Debug("Serving static files from embedded FS at /static")
	s.router.StaticFS("/static", http.FS(staticFS()))
}

// slowRequestLogger flags callbacks that take longer than threshold.
func slowRequestLogger(logger *internal.Logger, threshold time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if elapsed := time.Since(start); elapsed > threshold {
			logger.Warn("%s %s took %.2fms (request %s)",
				c.Request.Method, c.Request.URL.Path,
				float64(elapsed.Nanoseconds())/1e6, middleware.GetRequestID(c.Request.Context()))
		}
	}
}
