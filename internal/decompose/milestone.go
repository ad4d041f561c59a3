package decompose

import (
	"fmt"

	"task-intelligence/internal/model"
)

// milestones generates one checkpoint per ~2 hours of estimated time
// (capped at maxMilestones). With subtasks present, checkpoints cover
// contiguous subtask ranges; without, they split the time evenly.
func (s *service) milestones(task model.Task, subtasks []model.Subtask) []Milestone {
	count := task.EstimatedTime / milestoneStep
	if count > maxMilestones {
		count = maxMilestones
	}
	if count < 1 {
		count = 1
	}

	milestones := make([]Milestone, 0, count)

	if len(subtasks) == 0 {
		for i := 1; i <= count; i++ {
			milestones = append(milestones, Milestone{
				ID:      s.subtaskID(task.ID, 1000+i, "milestone"),
				Name:    fmt.Sprintf("Mốc %d/%d", i, count),
				Percent: i * 100 / count,
				Minutes: task.EstimatedTime * i / count,
			})
		}
		return milestones
	}

	if count > len(subtasks) {
		count = len(subtasks)
	}

	covered := 0
	for i := 1; i <= count; i++ {
		// Contiguous range [covered, upTo) of subtasks for this milestone.
		upTo := len(subtasks) * i / count
		ids := make([]string, 0, upTo-covered)
		for _, st := range subtasks[covered:upTo] {
			ids = append(ids, st.ID)
		}
		covered = upTo

		milestones = append(milestones, Milestone{
			ID:         s.subtaskID(task.ID, 1000+i, "milestone"),
			Name:       fmt.Sprintf("Mốc %d/%d: hoàn thành %q", i, count, subtasks[upTo-1].Name),
			Percent:    upTo * 100 / len(subtasks),
			SubtaskIDs: ids,
			Minutes:    task.EstimatedTime * i / count,
		})
	}

	return milestones
}
