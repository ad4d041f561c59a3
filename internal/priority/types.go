package priority

import "task-intelligence/internal/model"

// Breakdown holds the four weighted sub-scores, each in [0,10].
type Breakdown struct {
	Urgency      float64 `json:"urgency"`
	Importance   float64 `json:"importance"`
	Effort       float64 `json:"effort"`
	Dependencies float64 `json:"dependencies"`
}

// ScoreResult is the outcome of scoring a single task.
type ScoreResult struct {
	Score           int       `json:"score"` // 0-100
	Level           string    `json:"level"`
	Breakdown       Breakdown `json:"breakdown"`
	Recommendations []string  `json:"recommendations"`
}

// EmojiIntent is the merged signal of all emoji found in a text.
// Urgency/Importance 0 means no emoji carried that signal.
type EmojiIntent struct {
	Urgency    int      `json:"urgency"`
	Importance int      `json:"importance"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
}

// DeadlineBuckets partitions tasks by due-date proximity.
type DeadlineBuckets struct {
	Overdue    []model.Task `json:"overdue"`
	Today      []model.Task `json:"today"`
	ThisWeek   []model.Task `json:"thisWeek"`
	Later      []model.Task `json:"later"`
	NoDeadline []model.Task `json:"noDeadline"`
}

// PriorityBuckets partitions tasks by computed score band.
type PriorityBuckets struct {
	Critical []model.Task `json:"critical"`
	High     []model.Task `json:"high"`
	Medium   []model.Task `json:"medium"`
	Low      []model.Task `json:"low"`
}

// SimilarGroup is a transitively-connected group of near-duplicate
// tasks with a merge hint.
type SimilarGroup struct {
	TaskIDs    []string `json:"taskIds"`
	Suggestion string   `json:"suggestion"`
}

// Clusters is the result of partitioning a task list along several axes.
type Clusters struct {
	ByCategory map[string][]model.Task `json:"byCategory"`
	ByProject  map[string][]model.Task `json:"byProject"`
	ByDeadline DeadlineBuckets         `json:"byDeadline"`
	ByPriority PriorityBuckets         `json:"byPriority"`
	Similar    []SimilarGroup          `json:"similar"`
}
