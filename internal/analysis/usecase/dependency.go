package usecase

import (
	"context"

	"task-intelligence/internal/analysis"
)

// DetectDependencies finds explicit ordering relations in a task list.
func (uc *implUseCase) DetectDependencies(ctx context.Context, input analysis.DependencyInput) (analysis.DependencyOutput, error) {
	if len(input.Tasks) == 0 {
		return analysis.DependencyOutput{}, analysis.ErrNoTasks
	}

	m := uc.dependency.Detect(ctx, normalizeTasks(input.Tasks))

	uc.l.Infof(ctx, "DetectDependencies: %d tasks, %d blocked", len(input.Tasks), len(m.BlockedBy))

	return analysis.DependencyOutput{Dependencies: m}, nil
}

// SuggestDependencies proposes likely dependencies from deadlines and
// phase naming.
func (uc *implUseCase) SuggestDependencies(ctx context.Context, input analysis.DependencyInput) (analysis.SuggestionOutput, error) {
	if len(input.Tasks) == 0 {
		return analysis.SuggestionOutput{}, analysis.ErrNoTasks
	}

	suggestions := uc.dependency.Suggest(ctx, normalizeTasks(input.Tasks))

	uc.l.Infof(ctx, "SuggestDependencies: %d tasks, %d suggestions", len(input.Tasks), len(suggestions))

	return analysis.SuggestionOutput{Suggestions: suggestions, Count: len(suggestions)}, nil
}
