package http

import (
	"github.com/gin-gonic/gin"

	"rice-leaf-detection/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Only classification is rate limited; it is the one route that calls the Space.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/classify", mw.RateLimit(), h.Classify)
	rg.GET("/diseases", h.ListDiseases)
	rg.GET("/upstream/status", mw.RateLimit(), h.UpstreamStatus)
}
