package usecase

import (
	"context"

	"task-intelligence/internal/analysis"
)

// DetectRecurrence finds repeating patterns in completed tasks.
func (uc *implUseCase) DetectRecurrence(ctx context.Context, input analysis.RecurrenceInput) (analysis.RecurrenceOutput, error) {
	if len(input.Tasks) == 0 {
		return analysis.RecurrenceOutput{}, analysis.ErrNoTasks
	}

	patterns := uc.recurrence.Detect(ctx, normalizeTasks(input.Tasks))

	uc.l.Infof(ctx, "DetectRecurrence: %d tasks, %d patterns", len(input.Tasks), len(patterns))

	return analysis.RecurrenceOutput{Patterns: patterns, Count: len(patterns)}, nil
}
