package model

// Template is read-only reference data describing a reusable task
// shape. Templates come from the template library and are never
// mutated by the engine.
type Template struct {
	ID            string
	Name          string
	Category      string
	Priority      Priority
	Steps         []string // ordered subtask names
	EstimatedTime int      // minutes, 0 = unset
	Recurrence    string   // daily | weekly | monthly | "" (none)
	Tags          []string
}
