package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"task-intelligence/internal/analysis"
	"task-intelligence/pkg/response"
)

// respondError translates use-case errors into HTTP responses.
// Validation-grade domain errors become 400, everything else 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, analysis.ErrNoTasks),
		errors.Is(err, analysis.ErrEmptyTask),
		errors.Is(err, analysis.ErrEmptyText),
		errors.Is(err, analysis.ErrBadDate):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}

// analysisDependencyInput adapts the shared task-list body.
func analysisDependencyInput(req tasksReq) analysis.DependencyInput {
	return analysis.DependencyInput{Tasks: req.Tasks}
}

// analysisRecurrenceInput adapts the shared task-list body.
func analysisRecurrenceInput(req tasksReq) analysis.RecurrenceInput {
	return analysis.RecurrenceInput{Tasks: req.Tasks}
}

// analysisMergeInput adapts the shared task-list body.
func analysisMergeInput(req tasksReq) analysis.MergeInput {
	return analysis.MergeInput{Tasks: req.Tasks}
}
