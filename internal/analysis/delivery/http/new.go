package http

import (
	"github.com/gin-gonic/gin"

	"task-intelligence/internal/analysis"
	"task-intelligence/pkg/log"
)

// Handler is the public interface for the analysis HTTP delivery layer.
type Handler interface {
	Analyze(c *gin.Context)
	Score(c *gin.Context)
	Estimate(c *gin.Context)
	Decompose(c *gin.Context)
	DetectDependencies(c *gin.Context)
	SuggestDependencies(c *gin.Context)
	DetectRecurrence(c *gin.Context)
	Cluster(c *gin.Context)
	SuggestMerge(c *gin.Context)
	ParseDate(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc analysis.UseCase
}

// New creates a new HTTP handler for the analysis domain.
func New(l log.Logger, uc analysis.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
