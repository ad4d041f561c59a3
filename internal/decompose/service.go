// Package decompose breaks tasks into ordered subtasks following GTD
// conventions: template or keyword-pattern steps, the two-minute rule
// for trivial actions, consolidation of long step lists and milestones
// for long-running tasks.
package decompose

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"task-intelligence/internal/model"
	"task-intelligence/internal/template"
	"task-intelligence/pkg/log"
)

// Deterministic namespace for generated subtask/milestone ids: the
// same task always decomposes to the same ids.
var idNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// Service is the decomposition interface.
type Service interface {
	// Decompose breaks a task into ordered subtasks.
	Decompose(ctx context.Context, task model.Task, opts Options) Result

	// SuggestMerge groups near-duplicate tasks into merge candidates.
	SuggestMerge(ctx context.Context, tasks []model.Task) []MergeGroup
}

type service struct {
	l         log.Logger
	templates template.Library
}

// New creates a decomposition service. templates may be nil; the
// template strategy then never matches.
func New(l log.Logger, templates template.Library) Service {
	return &service{l: l, templates: templates}
}

// Decompose selects a step source (template, then keyword pattern,
// then generic), applies the two-minute rule, consolidates oversized
// lists and generates milestones for long tasks.
func (s *service) Decompose(ctx context.Context, task model.Task, opts Options) Result {
	if opts.MaxSubtasks <= 0 {
		opts.MaxSubtasks = DefaultOptions().MaxSubtasks
	}
	if opts.MinDuration <= 0 {
		opts.MinDuration = DefaultOptions().MinDuration
	}

	result := Result{Recommendations: []string{}}

	if task.EstimatedTime > 0 && task.EstimatedTime < opts.MinDuration {
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("Task chỉ khoảng %d phút, nên làm luôn thay vì chia nhỏ", task.EstimatedTime))
		return result
	}

	steps, strategy := s.selectSteps(task)
	result.Strategy = strategy

	subtasks := make([]model.Subtask, 0, len(steps))
	for i, step := range steps {
		subtasks = append(subtasks, model.Subtask{
			ID:       s.subtaskID(task.ID, i, step),
			ParentID: task.ID,
			Name:     step,
			Order:    i,
		})
	}

	if opts.Use2MinRule {
		subtasks, result.TwoMinuteTasks = splitTwoMinuteTasks(subtasks)
		if len(result.TwoMinuteTasks) > 0 {
			result.Recommendations = append(result.Recommendations,
				fmt.Sprintf("%d việc dưới 2 phút, theo quy tắc 2 phút nên làm ngay", len(result.TwoMinuteTasks)))
		}
	}

	if len(subtasks) > opts.MaxSubtasks {
		subtasks = s.consolidate(task.ID, subtasks)
		result.Recommendations = append(result.Recommendations,
			"Task có nhiều bước, đã gom lại thành các giai đoạn")
	}
	result.Subtasks = subtasks

	if task.EstimatedTime > milestoneThreshold {
		result.Milestones = s.milestones(task, subtasks)
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("Task dài %d phút, đã chia %d mốc kiểm tra tiến độ", task.EstimatedTime, len(result.Milestones)))
	}

	s.l.Debugf(ctx, "decomposed %q via %s: %d subtasks, %d two-minute, %d milestones",
		task.Name, strategy, len(result.Subtasks), len(result.TwoMinuteTasks), len(result.Milestones))

	return result
}

// selectSteps is the strategy cascade: template match first, then the
// keyword-pattern table, then the generic fallback.
func (s *service) selectSteps(task model.Task) ([]string, string) {
	if s.templates != nil {
		if matches := s.templates.SuggestFromName(task.Name); len(matches) > 0 && len(matches[0].Steps) > 0 {
			return matches[0].Steps, StrategyTemplate
		}
	}

	name := strings.ToLower(task.Name)
	for _, pattern := range keywordPatterns {
		for _, kw := range pattern.keywords {
			if strings.Contains(name, kw) {
				return pattern.steps, StrategyKeyword
			}
		}
	}

	return genericSteps, StrategyGeneric
}

// splitTwoMinuteTasks pulls subtasks containing a quick-action keyword
// out of the main list and tags them with the two-minute estimate.
func splitTwoMinuteTasks(subtasks []model.Subtask) (main, quick []model.Subtask) {
	main = make([]model.Subtask, 0, len(subtasks))
	for _, st := range subtasks {
		if isQuickAction(st.Name) {
			st.EstimatedTime = twoMinuteEstimate
			quick = append(quick, st)
			continue
		}
		main = append(main, st)
	}

	for i := range main {
		main[i].Order = i
	}
	return main, quick
}

func isQuickAction(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range quickActionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// consolidate folds every consolidationSize consecutive subtasks into
// one "Giai đoạn N" parent carrying the originals as children.
func (s *service) consolidate(taskID string, subtasks []model.Subtask) []model.Subtask {
	phases := make([]model.Subtask, 0, (len(subtasks)+consolidationSize-1)/consolidationSize)

	for start := 0; start < len(subtasks); start += consolidationSize {
		end := start + consolidationSize
		if end > len(subtasks) {
			end = len(subtasks)
		}
		n := len(phases) + 1
		phase := model.Subtask{
			ID:       s.subtaskID(taskID, -n, "phase"),
			ParentID: taskID,
			Name:     fmt.Sprintf("Giai đoạn %d", n),
			Order:    n - 1,
			Children: subtasks[start:end],
		}
		phases = append(phases, phase)
	}

	return phases
}

// subtaskID derives a stable id from the parent task and step.
func (s *service) subtaskID(taskID string, index int, step string) string {
	return uuid.NewSHA1(idNamespace, []byte(fmt.Sprintf("%s:%d:%s", taskID, index, step))).String()
}
