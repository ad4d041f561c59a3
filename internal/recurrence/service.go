// Package recurrence detects repeating task patterns from completion
// history: tasks are grouped by normalized name, completion intervals
// are analyzed and classified into recurrence types.
package recurrence

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"task-intelligence/internal/model"
	"task-intelligence/pkg/log"
	"task-intelligence/pkg/similarity"
)

const (
	// Minimum total tasks before detection runs at all.
	minTasks = 5
	// Minimum completed occurrences inside a group.
	minOccurrences = 2
	// Name similarity threshold for greedy group merging.
	groupThreshold = 0.7
	// A group is rejected when gap stddev exceeds this share of the mean.
	maxSpread = 0.5
)

// Service is the recurrence-detection interface.
type Service interface {
	// Detect finds recurring patterns. Empty result means nothing to
	// suggest, never an error.
	Detect(ctx context.Context, tasks []model.Task) []Pattern
}

type service struct {
	l log.Logger
}

// New creates a recurrence detection service.
func New(l log.Logger) Service {
	return &service{l: l}
}

type group struct {
	baseName string
	tasks    []model.Task
}

// Detect requires at least minTasks tasks, groups them by normalized
// name (greedy first-match on Levenshtein similarity), then analyzes
// completion intervals per group.
func (s *service) Detect(ctx context.Context, tasks []model.Task) []Pattern {
	if len(tasks) < minTasks {
		return nil
	}

	groups := make([]*group, 0)
	for _, task := range tasks {
		normalized := similarity.NormalizeName(task.Name)
		if normalized == "" {
			continue
		}

		placed := false
		for _, g := range groups {
			if similarity.Ratio(normalized, g.baseName) > groupThreshold {
				g.tasks = append(g.tasks, task)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, &group{baseName: normalized, tasks: []model.Task{task}})
		}
	}

	patterns := make([]Pattern, 0)
	for _, g := range groups {
		if p := s.analyzeGroup(g); p != nil {
			patterns = append(patterns, *p)
		}
	}

	s.l.Debugf(ctx, "recurrence: %d tasks, %d name groups, %d patterns", len(tasks), len(groups), len(patterns))
	return patterns
}

// analyzeGroup computes day gaps between consecutive completions and
// classifies the mean interval. Returns nil when the group shows no
// stable pattern.
func (s *service) analyzeGroup(g *group) *Pattern {
	dates := make([]time.Time, 0, len(g.tasks))
	for _, t := range g.tasks {
		if !t.IsDone() {
			continue
		}
		switch {
		case t.CompletedAt != nil:
			dates = append(dates, *t.CompletedAt)
		case t.DueDate != nil:
			dates = append(dates, *t.DueDate)
		}
	}
	if len(dates) < minOccurrences {
		return nil
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	gaps := make([]float64, 0, len(dates)-1)
	for i := 1; i < len(dates); i++ {
		gaps = append(gaps, dates[i].Sub(dates[i-1]).Hours()/24)
	}

	mean := meanOf(gaps)
	if mean <= 0 {
		return nil
	}
	stdDev := stdDevOf(gaps, mean)
	if stdDev > maxSpread*mean {
		return nil
	}

	patternType, confidence := classify(mean, stdDev)
	if patternType == "" {
		return nil
	}

	interval := int(math.Round(mean))
	return &Pattern{
		BaseName:     g.baseName,
		Occurrences:  len(dates),
		Type:         patternType,
		IntervalDays: interval,
		Confidence:   confidence,
		Suggestion:   suggestion(g.baseName, patternType, interval),
	}
}

// classify maps a mean gap to a recurrence type with its confidence.
func classify(mean, stdDev float64) (string, float64) {
	switch {
	case mean >= 0.5 && mean <= 1.5:
		return TypeDaily, 0.9
	case mean >= 6 && mean <= 8:
		return TypeWeekly, 0.85
	case mean >= 12 && mean <= 16:
		return TypeBiweekly, 0.8
	case mean >= 27 && mean <= 33:
		return TypeMonthly, 0.75
	case mean >= 2 && mean <= 60:
		return TypeCustom, math.Max(0.5, 1-stdDev/mean)
	default:
		return "", 0
	}
}

func suggestion(baseName, patternType string, interval int) string {
	switch patternType {
	case TypeDaily:
		return fmt.Sprintf("Task %q lặp lại hàng ngày, nên tạo recurring task mỗi ngày", baseName)
	case TypeWeekly:
		return fmt.Sprintf("Task %q lặp lại hàng tuần, nên tạo recurring task mỗi tuần", baseName)
	case TypeBiweekly:
		return fmt.Sprintf("Task %q lặp lại hai tuần một lần, nên tạo recurring task mỗi 2 tuần", baseName)
	case TypeMonthly:
		return fmt.Sprintf("Task %q lặp lại hàng tháng, nên tạo recurring task mỗi tháng", baseName)
	default:
		return fmt.Sprintf("Task %q lặp lại khoảng %d ngày một lần, cân nhắc tạo recurring task", baseName, interval)
	}
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stdDevOf(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}
