package decompose

import "task-intelligence/internal/model"

// Options tunes decomposition.
type Options struct {
	MaxSubtasks int  // consolidate above this count (default 7)
	MinDuration int  // minutes below which a task is not worth splitting (default 15)
	Use2MinRule bool // extract trivial sub-actions into TwoMinuteTasks
}

// DefaultOptions returns the standard GTD-flavored settings.
func DefaultOptions() Options {
	return Options{MaxSubtasks: 7, MinDuration: 15, Use2MinRule: true}
}

// Milestone is a checkpoint within a long task's decomposition.
type Milestone struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Percent    int      `json:"percent"` // cumulative completion share
	SubtaskIDs []string `json:"subtaskIds"`
	Minutes    int      `json:"minutes"` // estimated minutes covered
}

// Result is the outcome of decomposing one task.
type Result struct {
	Strategy        string          `json:"strategy"` // template | keyword | generic
	Subtasks        []model.Subtask `json:"subtasks"`
	Milestones      []Milestone     `json:"milestones"`
	TwoMinuteTasks  []model.Subtask `json:"twoMinuteTasks"`
	Recommendations []string        `json:"recommendations"`
}

// MergeGroup is a set of near-duplicate tasks that could be combined.
type MergeGroup struct {
	TaskIDs    []string `json:"taskIds"`
	MergedName string   `json:"mergedName"`
}
