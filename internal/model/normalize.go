package model

import (
	"strings"
	"time"
)

// RawTask is the loosely-typed task shape accepted at the ingestion
// boundary. Upstream callers disagree on field names (title vs name,
// project vs projectId, duration vs estimatedTime), so every known
// variant is accepted here and collapsed into the canonical Task
// exactly once, instead of each component checking variants itself.
type RawTask struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	Notes     string `json:"notes"`
	Desc      string `json:"description"`
	Category  string `json:"category"`
	Priority  string `json:"priority"`
	Status    string `json:"status"`
	Completed bool   `json:"completed"`
	Important bool   `json:"important"`

	DueDate     string `json:"dueDate"`
	Deadline    string `json:"deadline"`
	CompletedAt string `json:"completedAt"`
	CreatedAt   string `json:"createdAt"`

	EstimatedTime int `json:"estimatedTime"`
	Duration      int `json:"duration"`
	ActualTime    int `json:"actualTime"`

	Subtasks []RawSubtask `json:"subtasks"`
	Tags     []string     `json:"tags"`

	BlockedBy []string `json:"blockedBy"`
	Blocking  []string `json:"blocking"`

	ProjectID string `json:"projectId"`
	Project   string `json:"project"`
}

// RawSubtask mirrors RawTask for subtask entries.
type RawSubtask struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Title    string       `json:"title"`
	Done     bool         `json:"done"`
	Children []RawSubtask `json:"children"`
}

// Normalize collapses a RawTask into the canonical Task shape.
// Missing or malformed fields degrade to zero values; the engine is
// advisory and must not reject input outright.
func (r RawTask) Normalize() Task {
	t := Task{
		ID:            r.ID,
		Name:          firstNonEmpty(r.Name, r.Title),
		Notes:         firstNonEmpty(r.Notes, r.Desc),
		Category:      r.Category,
		Important:     r.Important,
		EstimatedTime: firstPositive(r.EstimatedTime, r.Duration),
		ActualTime:    r.ActualTime,
		Tags:          r.Tags,
		BlockedBy:     dedupeIDs(r.BlockedBy, r.ID),
		Blocking:      dedupeIDs(r.Blocking, r.ID),
		ProjectID:     firstNonEmpty(r.ProjectID, r.Project),
	}

	switch strings.ToLower(r.Priority) {
	case string(PriorityHigh):
		t.Priority = PriorityHigh
	case string(PriorityLow):
		t.Priority = PriorityLow
	default:
		t.Priority = PriorityMedium
	}

	switch strings.ToLower(r.Status) {
	case string(StatusDone), "completed":
		t.Status = StatusDone
	case string(StatusInProgress), "doing":
		t.Status = StatusInProgress
	default:
		if r.Completed {
			t.Status = StatusDone
		} else {
			t.Status = StatusTodo
		}
	}

	t.DueDate = parseISO(firstNonEmpty(r.DueDate, r.Deadline))
	t.CompletedAt = parseISO(r.CompletedAt)
	t.CreatedAt = parseISO(r.CreatedAt)

	t.Subtasks = make([]Subtask, 0, len(r.Subtasks))
	for i, rs := range r.Subtasks {
		t.Subtasks = append(t.Subtasks, rs.normalize(r.ID, i))
	}

	return t
}

func (r RawSubtask) normalize(parentID string, order int) Subtask {
	st := Subtask{
		ID:       r.ID,
		ParentID: parentID,
		Name:     firstNonEmpty(r.Name, r.Title),
		Done:     r.Done,
		Order:    order,
	}
	for i, child := range r.Children {
		st.Children = append(st.Children, child.normalize(r.ID, i))
	}
	return st
}

// parseISO accepts RFC3339 or plain YYYY-MM-DD date strings.
func parseISO(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

// dedupeIDs removes duplicates and self-references from an id list.
func dedupeIDs(ids []string, self string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || id == self || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
