package effort

// Estimation sources, in cascade order.
const (
	SourceUserDefined     = "user-defined"
	SourceTemplate        = "template"
	SourceHistorical      = "historical"
	SourceAIMemory        = "ai-memory"
	SourceKeywordAnalysis = "keyword-analysis"
	SourceDefault         = "default"
)

// Breakdown explains an estimate that includes subtask overhead.
type Breakdown struct {
	BaseTime      int `json:"baseTime"`      // minutes from the winning source
	SubtasksTime  int `json:"subtasksTime"`  // minutes added for incomplete subtasks
	SubtasksCount int `json:"subtasksCount"` // incomplete subtasks counted
}

// Estimate is the expected completion time for a task.
type Estimate struct {
	Minutes    int        `json:"minutes"`
	Confidence float64    `json:"confidence"` // [0,1]
	Source     string     `json:"source"`
	Breakdown  *Breakdown `json:"breakdown,omitempty"`
}

// Predictor is an optional external memory that may already know how
// long a task takes. Implementations return ok=false when they have
// no prediction.
type Predictor interface {
	PredictMinutes(name string) (minutes int, ok bool)
}
