// Package checklist parses markdown checkbox lists embedded in task
// notes and lifts them into subtasks and progress stats.
package checklist

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"task-intelligence/internal/model"
)

// Regex pattern: captures indent, checkbox state, and text
// Example: "  - [x] Task name" → groups: ["  ", "x", "Task name"]
const checkboxPattern = `(?m)^(\s*)- \[([ xX])\] (.+)$`

// Deterministic namespace for subtasks lifted from notes.
var idNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

type Service interface {
	// ParseCheckboxes extracts all checkboxes from markdown content
	ParseCheckboxes(content string) []Checkbox

	// GetStats calculates checklist progress
	GetStats(content string) Stats

	// ToSubtasks lifts the checkboxes of a task's notes into subtasks
	ToSubtasks(taskID, content string) []model.Subtask

	// IsFullyCompleted checks if all checkboxes are checked
	IsFullyCompleted(content string) bool
}

type service struct {
	pattern *regexp.Regexp
}

func New() Service {
	return &service{
		pattern: regexp.MustCompile(checkboxPattern),
	}
}

// sanitizeContent removes code blocks before checkbox parsing.
// Prevents matching fake checkboxes in code examples.
func sanitizeContent(content string) string {
	fenced := regexp.MustCompile("(?s)```.*?```")
	sanitized := fenced.ReplaceAllString(content, "")

	inline := regexp.MustCompile("`[^`]+`")
	return inline.ReplaceAllString(sanitized, "")
}

// ParseCheckboxes extracts all checkboxes from markdown
func (s *service) ParseCheckboxes(content string) []Checkbox {
	sanitized := sanitizeContent(content)

	matches := s.pattern.FindAllStringSubmatch(sanitized, -1)
	checkboxes := make([]Checkbox, 0, len(matches))

	for i, match := range matches {
		if len(match) != 4 {
			continue
		}
		checkboxes = append(checkboxes, Checkbox{
			Line:    i,
			Indent:  match[1],
			Checked: strings.ToLower(match[2]) == "x",
			Text:    strings.TrimSpace(match[3]),
			RawLine: match[0],
		})
	}

	return checkboxes
}

// GetStats calculates checklist progress
func (s *service) GetStats(content string) Stats {
	checkboxes := s.ParseCheckboxes(content)
	total := len(checkboxes)
	if total == 0 {
		return Stats{}
	}

	completed := 0
	for _, cb := range checkboxes {
		if cb.Checked {
			completed++
		}
	}

	return Stats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Progress:  float64(completed) / float64(total) * 100,
	}
}

// ToSubtasks lifts the checkboxes of a task's notes into subtasks.
// Ids are stable per (task, position, text), so repeated analysis of
// the same notes yields identical subtasks.
func (s *service) ToSubtasks(taskID, content string) []model.Subtask {
	checkboxes := s.ParseCheckboxes(content)
	if len(checkboxes) == 0 {
		return nil
	}

	subtasks := make([]model.Subtask, 0, len(checkboxes))
	for i, cb := range checkboxes {
		subtasks = append(subtasks, model.Subtask{
			ID:       uuid.NewSHA1(idNamespace, []byte(fmt.Sprintf("%s:note:%d:%s", taskID, i, cb.Text))).String(),
			ParentID: taskID,
			Name:     cb.Text,
			Done:     cb.Checked,
			Order:    i,
		})
	}
	return subtasks
}

// IsFullyCompleted checks if all checkboxes are checked
func (s *service) IsFullyCompleted(content string) bool {
	checkboxes := s.ParseCheckboxes(content)
	if len(checkboxes) == 0 {
		return false // No checkboxes = not a checklist task
	}

	for _, cb := range checkboxes {
		if !cb.Checked {
			return false
		}
	}
	return true
}
