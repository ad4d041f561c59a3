package checklist

// Checkbox represents a single checkbox in markdown notes
type Checkbox struct {
	Line    int    // Ordinal among checkboxes in the content
	Indent  string // Leading whitespace
	Checked bool   // true if [x], false if [ ]
	Text    string // Checkbox text content
	RawLine string // Original line
}

// Stats represents checklist progress
type Stats struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	Progress  float64 `json:"progress"` // Completion percentage (0-100)
}
