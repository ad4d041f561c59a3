// Package priority computes heuristic urgency/importance scores for
// tasks, parses emoji intent, and suggests tags, categories and
// clusters. All functions are pure: inputs are never mutated.
package priority

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"task-intelligence/internal/model"
	"task-intelligence/pkg/log"
)

// Service is the priority-scoring interface.
type Service interface {
	// CalculateScore computes the weighted 0-100 priority score.
	CalculateScore(task model.Task, now time.Time) ScoreResult

	// ScoreLevel maps a 0-100 score to its display band.
	ScoreLevel(score int) string

	// ParseEmojis extracts the merged emoji intent from free text.
	ParseEmojis(text string) EmojiIntent

	// SuggestTags proposes tags not already on the task.
	SuggestTags(task model.Task, now time.Time) []string

	// SuggestCategory proposes a category, "" when nothing matches.
	SuggestCategory(task model.Task) string

	// ClusterTasks partitions tasks by category, project, deadline,
	// priority band and name similarity.
	ClusterTasks(ctx context.Context, tasks []model.Task, now time.Time) Clusters
}

type service struct {
	l log.Logger
}

// New creates a priority scoring service.
func New(l log.Logger) Service {
	return &service{l: l}
}

// CalculateScore computes urgency*0.4 + importance*0.3 + effort*0.2 +
// dependencies*0.1, each sub-score in [0,10], scaled x10 and clamped
// to [0,100].
func (s *service) CalculateScore(task model.Task, now time.Time) ScoreResult {
	intent := s.ParseEmojis(task.Name)

	breakdown := Breakdown{
		Urgency:      s.urgencyScore(task, intent, now),
		Importance:   s.importanceScore(task, intent),
		Effort:       s.effortScore(task),
		Dependencies: s.dependencyScore(task),
	}

	weighted := breakdown.Urgency*WeightUrgency +
		breakdown.Importance*WeightImportance +
		breakdown.Effort*WeightEffort +
		breakdown.Dependencies*WeightDependencies

	score := int(math.Round(clamp(weighted*10, 0, 100)))

	return ScoreResult{
		Score:           score,
		Level:           s.ScoreLevel(score),
		Breakdown:       breakdown,
		Recommendations: s.recommendations(task, score, now),
	}
}

// urgencyScore: baseline 5, due-date proximity overrides via fixed
// bands, priority floors/caps, emoji urgency floors (never lowers).
func (s *service) urgencyScore(task model.Task, intent EmojiIntent, now time.Time) float64 {
	score := 5.0

	if task.DueDate != nil {
		days := daysUntil(*task.DueDate, now)
		switch {
		case days <= 0:
			score = 10
		case days == 1:
			score = 9
		case days <= 3:
			score = 8
		case days <= 7:
			score = 6
		case days <= 14:
			score = 4
		default:
			score = 3
		}
	}

	switch task.Priority {
	case model.PriorityHigh:
		score = math.Max(score, 8)
	case model.PriorityLow:
		score = math.Min(score, 4)
	}

	if intent.Urgency > 0 {
		score = math.Max(score, float64(intent.Urgency))
	}

	return clamp(score, 0, 10)
}

// importanceScore: baseline 5, priority overrides, important flag and
// project association floor, emoji importance floors.
func (s *service) importanceScore(task model.Task, intent EmojiIntent) float64 {
	score := 5.0

	switch task.Priority {
	case model.PriorityHigh:
		score = 8
	case model.PriorityLow:
		score = 3
	}

	if task.Important {
		score = math.Max(score, 9)
	}
	if task.ProjectID != "" {
		score = math.Max(score, 6)
	}
	if intent.Importance > 0 {
		score = math.Max(score, float64(intent.Importance))
	}

	return clamp(score, 0, 10)
}

// effortScore: baseline 5, estimated-time bands, incomplete-subtask
// floors.
func (s *service) effortScore(task model.Task) float64 {
	score := 5.0

	if task.EstimatedTime > 0 {
		hours := float64(task.EstimatedTime) / 60
		switch {
		case hours >= 4:
			score = 9
		case hours >= 2:
			score = 7
		case hours >= 1:
			score = 5
		default:
			score = 3
		}
	}

	incomplete := task.IncompleteSubtasks()
	switch {
	case incomplete >= 5:
		score = math.Max(score, 8)
	case incomplete >= 3:
		score = math.Max(score, 6)
	}

	return clamp(score, 0, 10)
}

// dependencyScore: baseline 5, blockedBy floors at 8, blocking floors
// at 9. Blocking is evaluated after blockedBy so it wins when both
// apply.
func (s *service) dependencyScore(task model.Task) float64 {
	score := 5.0
	if len(task.BlockedBy) > 0 {
		score = math.Max(score, 8)
	}
	if len(task.Blocking) > 0 {
		score = math.Max(score, 9)
	}
	return clamp(score, 0, 10)
}

// ScoreLevel maps the final score to one of five display bands.
func (s *service) ScoreLevel(score int) string {
	switch {
	case score >= 90:
		return LevelCritical
	case score >= 75:
		return LevelHigh
	case score >= 50:
		return LevelMedium
	case score >= 25:
		return LevelLow
	default:
		return LevelMinimal
	}
}

// ParseEmojis scans the emoji table in text order. Urgency/importance
// take the maximum seen; category takes the last emoji carrying a
// category; tags accumulate as a set in first-seen order.
func (s *service) ParseEmojis(text string) EmojiIntent {
	type hit struct {
		pos    int
		intent emojiIntent
	}

	hits := make([]hit, 0, 4)
	for emoji, e := range emojiTable {
		from := 0
		for {
			idx := strings.Index(text[from:], emoji)
			if idx < 0 {
				break
			}
			hits = append(hits, hit{pos: from + idx, intent: e})
			from += idx + len(emoji)
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	intent := EmojiIntent{}
	seen := make(map[string]bool)
	for _, h := range hits {
		if h.intent.urgency > intent.Urgency {
			intent.Urgency = h.intent.urgency
		}
		if h.intent.importance > intent.Importance {
			intent.Importance = h.intent.importance
		}
		if h.intent.category != "" {
			intent.Category = h.intent.category
		}
		for _, tag := range h.intent.tags {
			if !seen[tag] {
				seen[tag] = true
				intent.Tags = append(intent.Tags, tag)
			}
		}
	}

	return intent
}

// SuggestTags combines keyword-table, emoji-derived and deadline-derived
// tags, excluding tags already on the task.
func (s *service) SuggestTags(task model.Task, now time.Time) []string {
	text := task.SearchText()
	suggested := make([]string, 0, 4)
	seen := make(map[string]bool)

	add := func(tag string) {
		if tag == "" || seen[tag] || task.HasTag(tag) {
			return
		}
		seen[tag] = true
		suggested = append(suggested, tag)
	}

	for _, entry := range tagKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				add(entry.tag)
				break
			}
		}
	}

	for _, tag := range s.ParseEmojis(task.Name).Tags {
		add(tag)
	}

	if task.DueDate != nil {
		days := daysUntil(*task.DueDate, now)
		if days <= 1 {
			add(TagUrgent)
		} else if days <= 7 {
			add(TagThisWeek)
		}
	}

	return suggested
}

// SuggestCategory prefers the emoji-derived category, falling back to
// the first keyword-table match.
func (s *service) SuggestCategory(task model.Task) string {
	if cat := s.ParseEmojis(task.Name).Category; cat != "" {
		return cat
	}

	text := task.SearchText()
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				return entry.category
			}
		}
	}
	return ""
}

func (s *service) recommendations(task model.Task, score int, now time.Time) []string {
	recs := make([]string, 0, 2)

	if task.DueDate != nil && daysUntil(*task.DueDate, now) < 0 {
		recs = append(recs, recOverdue)
	}
	if score >= 90 {
		recs = append(recs, recDoFirst)
	}
	if len(task.BlockedBy) > 0 {
		recs = append(recs, recBlocked)
	}
	if len(task.Blocking) > 0 {
		recs = append(recs, recBlocking)
	}
	if task.IncompleteSubtasks() >= 5 {
		recs = append(recs, recManySubtasks)
	}

	return recs
}

// daysUntil returns whole calendar days from now to due (negative when
// overdue, 0 when due today).
func daysUntil(due, now time.Time) int {
	startOfDay := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	return int(startOfDay(due.In(now.Location())).Sub(startOfDay(now)).Hours() / 24)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
