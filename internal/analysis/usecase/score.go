package usecase

import (
	"context"

	"task-intelligence/internal/analysis"
)

// Score computes priority scores for a batch of tasks.
func (uc *implUseCase) Score(ctx context.Context, input analysis.ScoreInput) (analysis.ScoreOutput, error) {
	if len(input.Tasks) == 0 {
		return analysis.ScoreOutput{}, analysis.ErrNoTasks
	}

	now, err := uc.resolveNow(input.Now)
	if err != nil {
		uc.l.Warnf(ctx, "Score: bad reference date %q", input.Now)
		return analysis.ScoreOutput{}, err
	}

	tasks := normalizeTasks(input.Tasks)

	results := make([]analysis.TaskScore, 0, len(tasks))
	for _, task := range tasks {
		results = append(results, analysis.TaskScore{
			TaskID: task.ID,
			Name:   task.Name,
			Result: uc.priority.CalculateScore(task, now),
		})
	}

	uc.l.Infof(ctx, "Score: scored %d tasks", len(results))

	return analysis.ScoreOutput{Results: results, Count: len(results)}, nil
}
