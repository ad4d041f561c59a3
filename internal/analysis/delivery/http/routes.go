package http

import (
	"github.com/gin-gonic/gin"

	"task-intelligence/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every analysis route is rate-limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())

	rg.POST("/analyze", h.Analyze)
	rg.POST("/score", h.Score)
	rg.POST("/estimate", h.Estimate)
	rg.POST("/decompose", h.Decompose)
	rg.POST("/cluster", h.Cluster)
	rg.POST("/merge", h.SuggestMerge)
	rg.POST("/recurrence", h.DetectRecurrence)
	rg.POST("/parse-date", h.ParseDate)

	deps := rg.Group("/dependencies")
	{
		deps.POST("/detect", h.DetectDependencies)
		deps.POST("/suggest", h.SuggestDependencies)
	}
}
