package analysis

import (
	"time"

	"task-intelligence/internal/checklist"
	"task-intelligence/internal/decompose"
	"task-intelligence/internal/dependency"
	"task-intelligence/internal/effort"
	"task-intelligence/internal/model"
	"task-intelligence/internal/priority"
	"task-intelligence/internal/recurrence"
)

// ParsedDate is a due date extracted from free text.
type ParsedDate struct {
	Date       time.Time `json:"date"`
	HasTime    bool      `json:"hasTime"`
	Confidence float64   `json:"confidence"`
	Detected   string    `json:"detected"` // strategy that matched
}

// AnalyzeInput is the input for the full per-task pipeline.
// Now is an optional RFC3339 reference instant; empty means wall clock.
type AnalyzeInput struct {
	Task       model.RawTask
	Historical []model.RawTask
	Now        string
}

// AnalyzeOutput is the combined analysis of a single task.
type AnalyzeOutput struct {
	TaskID        string               `json:"taskId"`
	Name          string               `json:"name"`
	Score         priority.ScoreResult `json:"score"`
	Estimate      effort.Estimate      `json:"estimate"`
	Decomposition decompose.Result     `json:"decomposition"`
	DueDate       *ParsedDate          `json:"dueDate,omitempty"` // parsed from the name, nil when none found
	Category      string               `json:"category,omitempty"`
	Tags          []string             `json:"tags,omitempty"`
	Checklist     *checklist.Stats     `json:"checklist,omitempty"` // progress of a notes checklist, nil when none
}

// ScoreInput is the input for batch priority scoring.
type ScoreInput struct {
	Tasks []model.RawTask
	Now   string
}

// TaskScore pairs a task with its score result.
type TaskScore struct {
	TaskID string               `json:"taskId"`
	Name   string               `json:"name"`
	Result priority.ScoreResult `json:"result"`
}

// ScoreOutput is the result of batch priority scoring.
type ScoreOutput struct {
	Results []TaskScore `json:"results"`
	Count   int         `json:"count"`
}

// EstimateInput is the input for batch effort estimation. Historical
// tasks feed the historical-average strategy.
type EstimateInput struct {
	Tasks      []model.RawTask
	Historical []model.RawTask
}

// TaskEstimate pairs a task with its effort estimate.
type TaskEstimate struct {
	TaskID   string          `json:"taskId"`
	Name     string          `json:"name"`
	Estimate effort.Estimate `json:"estimate"`
}

// EstimateOutput is the result of batch effort estimation.
type EstimateOutput struct {
	Results []TaskEstimate `json:"results"`
	Count   int            `json:"count"`
}

// DecomposeInput is the input for task decomposition. Zero option
// values fall back to the decomposition defaults.
type DecomposeInput struct {
	Task        model.RawTask
	MaxSubtasks int
	MinDuration int
	Use2MinRule *bool
}

// DecomposeOutput is the result of decomposing one task.
type DecomposeOutput struct {
	TaskID string           `json:"taskId"`
	Result decompose.Result `json:"result"`
}

// DependencyInput is the input for dependency detection and suggestion.
type DependencyInput struct {
	Tasks []model.RawTask
}

// DependencyOutput is the detected dependency map.
type DependencyOutput struct {
	Dependencies dependency.Map `json:"dependencies"`
}

// SuggestionOutput is the list of suggested dependencies.
type SuggestionOutput struct {
	Suggestions []dependency.Suggestion `json:"suggestions"`
	Count       int                     `json:"count"`
}

// RecurrenceInput is the input for recurrence detection.
type RecurrenceInput struct {
	Tasks []model.RawTask
}

// RecurrenceOutput is the list of detected recurring patterns.
type RecurrenceOutput struct {
	Patterns []recurrence.Pattern `json:"patterns"`
	Count    int                  `json:"count"`
}

// ClusterInput is the input for task clustering.
type ClusterInput struct {
	Tasks []model.RawTask
	Now   string
}

// ClusterOutput is the multi-axis partition of a task list.
type ClusterOutput struct {
	Clusters priority.Clusters `json:"clusters"`
}

// MergeInput is the input for merge suggestion.
type MergeInput struct {
	Tasks []model.RawTask
}

// MergeOutput is the list of merge candidate groups.
type MergeOutput struct {
	Groups []decompose.MergeGroup `json:"groups"`
	Count  int                    `json:"count"`
}

// ParseDateInput is the input for free-text date parsing. Base is an
// optional RFC3339 reference instant; empty means wall clock.
type ParseDateInput struct {
	Text string
	Base string
}

// ParseDateOutput is the result of free-text date parsing. Date is nil
// when no date was recognized.
type ParseDateOutput struct {
	Date *ParsedDate `json:"date,omitempty"`
}
