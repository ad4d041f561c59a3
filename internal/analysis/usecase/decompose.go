package usecase

import (
	"context"

	"task-intelligence/internal/analysis"
	"task-intelligence/internal/decompose"
)

// Decompose breaks one task into subtasks and milestones.
func (uc *implUseCase) Decompose(ctx context.Context, input analysis.DecomposeInput) (analysis.DecomposeOutput, error) {
	task := input.Task.Normalize()
	if task.Name == "" {
		return analysis.DecomposeOutput{}, analysis.ErrEmptyTask
	}

	opts := decompose.DefaultOptions()
	if input.MaxSubtasks > 0 {
		opts.MaxSubtasks = input.MaxSubtasks
	}
	if input.MinDuration > 0 {
		opts.MinDuration = input.MinDuration
	}
	if input.Use2MinRule != nil {
		opts.Use2MinRule = *input.Use2MinRule
	}

	result := uc.decompose.Decompose(ctx, task, opts)

	uc.l.Infof(ctx, "Decompose: task=%q strategy=%s subtasks=%d milestones=%d",
		task.Name, result.Strategy, len(result.Subtasks), len(result.Milestones))

	return analysis.DecomposeOutput{TaskID: task.ID, Result: result}, nil
}

// SuggestMerge groups near-duplicate tasks into merge candidates.
func (uc *implUseCase) SuggestMerge(ctx context.Context, input analysis.MergeInput) (analysis.MergeOutput, error) {
	if len(input.Tasks) == 0 {
		return analysis.MergeOutput{}, analysis.ErrNoTasks
	}

	groups := uc.decompose.SuggestMerge(ctx, normalizeTasks(input.Tasks))

	uc.l.Infof(ctx, "SuggestMerge: %d tasks, %d groups", len(input.Tasks), len(groups))

	return analysis.MergeOutput{Groups: groups, Count: len(groups)}, nil
}
