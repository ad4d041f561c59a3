package usecase

import (
	"context"

	"task-intelligence/internal/analysis"
)

// Cluster partitions a task list by category, project, deadline,
// priority band and name similarity.
func (uc *implUseCase) Cluster(ctx context.Context, input analysis.ClusterInput) (analysis.ClusterOutput, error) {
	if len(input.Tasks) == 0 {
		return analysis.ClusterOutput{}, analysis.ErrNoTasks
	}

	now, err := uc.resolveNow(input.Now)
	if err != nil {
		uc.l.Warnf(ctx, "Cluster: bad reference date %q", input.Now)
		return analysis.ClusterOutput{}, err
	}

	clusters := uc.priority.ClusterTasks(ctx, normalizeTasks(input.Tasks), now)

	uc.l.Infof(ctx, "Cluster: %d tasks, %d categories, %d similar groups",
		len(input.Tasks), len(clusters.ByCategory), len(clusters.Similar))

	return analysis.ClusterOutput{Clusters: clusters}, nil
}
