package usecase

import (
	"context"

	"task-intelligence/internal/analysis"
	"task-intelligence/internal/checklist"
	"task-intelligence/internal/decompose"
)

// Analyze runs the full per-task pipeline: priority score, effort
// estimate, decomposition and due-date parsing from the task name.
// Results are cached per task fingerprint and reference day.
func (uc *implUseCase) Analyze(ctx context.Context, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
	task := input.Task.Normalize()
	if task.Name == "" {
		return analysis.AnalyzeOutput{}, analysis.ErrEmptyTask
	}

	now, err := uc.resolveNow(input.Now)
	if err != nil {
		uc.l.Warnf(ctx, "Analyze: bad reference date %q", input.Now)
		return analysis.AnalyzeOutput{}, err
	}

	historical := normalizeTasks(input.Historical)

	// Checklists in the notes become subtasks, so effort estimation
	// sees their overhead.
	var checklistStats *checklist.Stats
	if task.Notes != "" {
		if stats := uc.checklist.GetStats(task.Notes); stats.Total > 0 {
			checklistStats = &stats
			if len(task.Subtasks) == 0 {
				task.Subtasks = uc.checklist.ToSubtasks(task.ID, task.Notes)
			}
		}
	}

	key := fingerprint(task, historical, now)
	if cached, ok := uc.cache.Get(key); ok {
		uc.l.Debugf(ctx, "Analyze: cache hit for task %q", task.Name)
		return cached, nil
	}

	out := analysis.AnalyzeOutput{
		TaskID:        task.ID,
		Name:          task.Name,
		Score:         uc.priority.CalculateScore(task, now),
		Estimate:      uc.effort.Estimate(ctx, task, historical),
		Decomposition: uc.decompose.Decompose(ctx, task, decompose.DefaultOptions()),
		Category:      task.Category,
		Tags:          uc.priority.SuggestTags(task, now),
		Checklist:     checklistStats,
	}

	if out.Category == "" {
		out.Category = uc.priority.SuggestCategory(task)
	}
	if task.DueDate == nil {
		out.DueDate = toParsedDate(uc.dateMath.Parse(task.Name, now))
	}

	uc.cache.Add(key, out)

	uc.l.Infof(ctx, "Analyze: task=%q score=%d estimate=%dm strategy=%s",
		task.Name, out.Score.Score, out.Estimate.Minutes, out.Decomposition.Strategy)

	return out, nil
}
