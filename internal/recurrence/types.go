package recurrence

// Recurrence types in decreasing specificity.
const (
	TypeDaily    = "daily"
	TypeWeekly   = "weekly"
	TypeBiweekly = "biweekly"
	TypeMonthly  = "monthly"
	TypeCustom   = "custom"
)

// Pattern describes a detected recurring task group.
type Pattern struct {
	BaseName     string  `json:"baseName"`
	Occurrences  int     `json:"occurrences"`
	Type         string  `json:"type"`
	IntervalDays int     `json:"intervalDays"`
	Confidence   float64 `json:"confidence"`
	Suggestion   string  `json:"suggestion"`
}
