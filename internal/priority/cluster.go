package priority

import (
	"context"
	"fmt"
	"time"

	"task-intelligence/internal/model"
	"task-intelligence/pkg/similarity"
)

// ClusterTasks partitions tasks along five axes: category, project,
// deadline bucket, computed priority band, and transitive name
// similarity (Jaccard > 0.5).
func (s *service) ClusterTasks(ctx context.Context, tasks []model.Task, now time.Time) Clusters {
	clusters := Clusters{
		ByCategory: make(map[string][]model.Task),
		ByProject:  make(map[string][]model.Task),
	}

	for _, task := range tasks {
		if task.Category != "" {
			clusters.ByCategory[task.Category] = append(clusters.ByCategory[task.Category], task)
		}
		if task.ProjectID != "" {
			clusters.ByProject[task.ProjectID] = append(clusters.ByProject[task.ProjectID], task)
		}

		switch {
		case task.DueDate == nil:
			clusters.ByDeadline.NoDeadline = append(clusters.ByDeadline.NoDeadline, task)
		case daysUntil(*task.DueDate, now) < 0:
			clusters.ByDeadline.Overdue = append(clusters.ByDeadline.Overdue, task)
		case daysUntil(*task.DueDate, now) == 0:
			clusters.ByDeadline.Today = append(clusters.ByDeadline.Today, task)
		case daysUntil(*task.DueDate, now) <= 7:
			clusters.ByDeadline.ThisWeek = append(clusters.ByDeadline.ThisWeek, task)
		default:
			clusters.ByDeadline.Later = append(clusters.ByDeadline.Later, task)
		}

		switch s.ScoreLevel(s.CalculateScore(task, now).Score) {
		case LevelCritical:
			clusters.ByPriority.Critical = append(clusters.ByPriority.Critical, task)
		case LevelHigh:
			clusters.ByPriority.High = append(clusters.ByPriority.High, task)
		case LevelMedium:
			clusters.ByPriority.Medium = append(clusters.ByPriority.Medium, task)
		default:
			clusters.ByPriority.Low = append(clusters.ByPriority.Low, task)
		}
	}

	clusters.Similar = s.similarGroups(tasks)

	s.l.Debugf(ctx, "clustered %d tasks: %d categories, %d projects, %d similar groups",
		len(tasks), len(clusters.ByCategory), len(clusters.ByProject), len(clusters.Similar))

	return clusters
}

// similarGroups groups tasks whose normalized names have Jaccard
// similarity above the threshold, transitively: if A~B and B~C then
// A, B, C share a group.
func (s *service) similarGroups(tasks []model.Task) []SimilarGroup {
	n := len(tasks)
	if n < 2 {
		return nil
	}

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	union := func(a, b int) { parent[find(a)] = find(b) }

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if similarity.Jaccard(tasks[i].Name, tasks[j].Name) > similarThreshold {
				union(i, j)
			}
		}
	}

	members := make(map[int][]int)
	for i := 0; i < n; i++ {
		root := find(i)
		members[root] = append(members[root], i)
	}

	groups := make([]SimilarGroup, 0)
	for i := 0; i < n; i++ {
		idxs, ok := members[find(i)]
		if !ok || len(idxs) < 2 || idxs[0] != i {
			continue
		}
		ids := make([]string, 0, len(idxs))
		for _, idx := range idxs {
			ids = append(ids, tasks[idx].ID)
		}
		groups = append(groups, SimilarGroup{
			TaskIDs:    ids,
			Suggestion: fmt.Sprintf("Có %d task tương tự nhau, cân nhắc gộp lại", len(ids)),
		})
	}

	return groups
}
