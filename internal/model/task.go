package model

import (
	"strings"
	"time"
)

// Environment represents the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Priority is the user-assigned priority of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Task is the canonical task shape consumed by every engine component.
// The engine only reads tasks; analysis results are returned as fresh
// structures and never written back here.
type Task struct {
	ID            string
	Name          string
	Notes         string
	Category      string
	Priority      Priority
	Status        Status
	Important     bool
	DueDate       *time.Time
	CompletedAt   *time.Time
	CreatedAt     *time.Time
	EstimatedTime int // minutes, 0 = unset
	ActualTime    int // minutes, 0 = unset
	Subtasks      []Subtask
	Tags          []string
	BlockedBy     []string
	Blocking      []string
	ProjectID     string
}

// Subtask is a single step inside a task. Consolidation may nest the
// original steps one level deep via Children.
type Subtask struct {
	ID            string
	ParentID      string
	Name          string
	Done          bool
	Order         int
	EstimatedTime int // minutes, 0 = unset
	Children      []Subtask
}

// IsDone reports whether the task is completed.
func (t Task) IsDone() bool {
	return t.Status == StatusDone
}

// IncompleteSubtasks counts subtasks not yet done.
func (t Task) IncompleteSubtasks() int {
	n := 0
	for _, st := range t.Subtasks {
		if !st.Done {
			n++
		}
	}
	return n
}

// HasTag reports whether the task already carries the given tag.
func (t Task) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

// SearchText returns the lowercase name+notes text used by keyword
// and reference matching.
func (t Task) SearchText() string {
	if t.Notes == "" {
		return strings.ToLower(t.Name)
	}
	return strings.ToLower(t.Name + " " + t.Notes)
}
