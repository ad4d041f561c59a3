package usecase

import (
	"context"

	"task-intelligence/internal/analysis"
)

// Estimate computes effort estimates for a batch of tasks.
func (uc *implUseCase) Estimate(ctx context.Context, input analysis.EstimateInput) (analysis.EstimateOutput, error) {
	if len(input.Tasks) == 0 {
		return analysis.EstimateOutput{}, analysis.ErrNoTasks
	}

	tasks := normalizeTasks(input.Tasks)
	historical := normalizeTasks(input.Historical)

	results := make([]analysis.TaskEstimate, 0, len(tasks))
	for _, task := range tasks {
		results = append(results, analysis.TaskEstimate{
			TaskID:   task.ID,
			Name:     task.Name,
			Estimate: uc.effort.Estimate(ctx, task, historical),
		})
	}

	uc.l.Infof(ctx, "Estimate: estimated %d tasks against %d historical", len(results), len(historical))

	return analysis.EstimateOutput{Results: results, Count: len(results)}, nil
}
