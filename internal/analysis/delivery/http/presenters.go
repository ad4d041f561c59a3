package http

import (
	"task-intelligence/internal/analysis"
	"task-intelligence/internal/model"
)

// --- Request DTOs ---

type analyzeReq struct {
	Task       model.RawTask   `json:"task" binding:"required"`
	Historical []model.RawTask `json:"historical"`
	Now        string          `json:"now"`
}

func (r analyzeReq) toInput() analysis.AnalyzeInput {
	return analysis.AnalyzeInput{
		Task:       r.Task,
		Historical: r.Historical,
		Now:        r.Now,
	}
}

// ---

type scoreReq struct {
	Tasks []model.RawTask `json:"tasks" binding:"required"`
	Now   string          `json:"now"`
}

func (r scoreReq) toInput() analysis.ScoreInput {
	return analysis.ScoreInput{Tasks: r.Tasks, Now: r.Now}
}

// ---

type estimateReq struct {
	Tasks      []model.RawTask `json:"tasks" binding:"required"`
	Historical []model.RawTask `json:"historical"`
}

func (r estimateReq) toInput() analysis.EstimateInput {
	return analysis.EstimateInput{Tasks: r.Tasks, Historical: r.Historical}
}

// ---

type decomposeReq struct {
	Task        model.RawTask `json:"task" binding:"required"`
	MaxSubtasks int           `json:"maxSubtasks" binding:"omitempty,min=1,max=50"`
	MinDuration int           `json:"minDuration" binding:"omitempty,min=1"`
	Use2MinRule *bool         `json:"use2MinRule"`
}

func (r decomposeReq) toInput() analysis.DecomposeInput {
	return analysis.DecomposeInput{
		Task:        r.Task,
		MaxSubtasks: r.MaxSubtasks,
		MinDuration: r.MinDuration,
		Use2MinRule: r.Use2MinRule,
	}
}

// ---

// tasksReq is the shared body for list-based operations: dependency
// detection and suggestion, recurrence detection and merge suggestion.
type tasksReq struct {
	Tasks []model.RawTask `json:"tasks" binding:"required"`
}

// ---

type clusterReq struct {
	Tasks []model.RawTask `json:"tasks" binding:"required"`
	Now   string          `json:"now"`
}

func (r clusterReq) toInput() analysis.ClusterInput {
	return analysis.ClusterInput{Tasks: r.Tasks, Now: r.Now}
}

// ---

type parseDateReq struct {
	Text string `json:"text" binding:"required,min=1,max=500"`
	Base string `json:"base"`
}

func (r parseDateReq) toInput() analysis.ParseDateInput {
	return analysis.ParseDateInput{Text: r.Text, Base: r.Base}
}
