package recurrence_test

import (
	"context"
	"testing"
	"time"

	"task-intelligence/internal/model"
	"task-intelligence/internal/recurrence"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var base = time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

// completedEvery builds n done tasks named name, completed gapDays apart.
func completedEvery(name string, n, gapDays int) []model.Task {
	tasks := make([]model.Task, 0, n)
	for i := 0; i < n; i++ {
		done := base.AddDate(0, 0, i*gapDays)
		tasks = append(tasks, model.Task{
			ID:          name + string(rune('a'+i)),
			Name:        name,
			Status:      model.StatusDone,
			CompletedAt: &done,
		})
	}
	return tasks
}

func TestDetect(t *testing.T) {
	svc := recurrence.New(&mockLogger{})
	ctx := context.Background()

	t.Run("Fewer Than Five Tasks Returns Nothing", func(t *testing.T) {
		tasks := completedEvery("Báo cáo tuần", 4, 7)
		if got := svc.Detect(ctx, tasks); got != nil {
			t.Errorf("expected nil below the task minimum, got %v", got)
		}
	})

	t.Run("Weekly Pattern", func(t *testing.T) {
		tasks := completedEvery("Báo cáo tuần", 4, 7)
		tasks = append(tasks, model.Task{ID: "x", Name: "việc khác hẳn"})

		got := svc.Detect(ctx, tasks)
		if len(got) != 1 {
			t.Fatalf("patterns = %d, want 1", len(got))
		}
		p := got[0]
		if p.Type != recurrence.TypeWeekly || p.IntervalDays != 7 {
			t.Errorf("pattern = %+v, want weekly/7", p)
		}
		if p.Confidence != 0.85 {
			t.Errorf("confidence = %v, want 0.85", p.Confidence)
		}
		if p.Occurrences != 4 {
			t.Errorf("occurrences = %d, want 4", p.Occurrences)
		}
	})

	t.Run("Daily Pattern", func(t *testing.T) {
		tasks := completedEvery("Tập thể dục", 6, 1)
		got := svc.Detect(ctx, tasks)
		if len(got) != 1 || got[0].Type != recurrence.TypeDaily {
			t.Fatalf("got %+v, want one daily pattern", got)
		}
	})

	t.Run("Dates In Names Group Together", func(t *testing.T) {
		tasks := []model.Task{}
		for i := 0; i < 5; i++ {
			done := base.AddDate(0, 0, i*7)
			tasks = append(tasks, model.Task{
				ID:          string(rune('a' + i)),
				Name:        "Báo cáo tuần " + done.Format("02/01"),
				Status:      model.StatusDone,
				CompletedAt: &done,
			})
		}
		got := svc.Detect(ctx, tasks)
		if len(got) != 1 || got[0].Type != recurrence.TypeWeekly {
			t.Fatalf("got %+v, want one weekly pattern", got)
		}
	})

	t.Run("Irregular Gaps Rejected", func(t *testing.T) {
		gaps := []int{0, 2, 25, 27, 60}
		tasks := make([]model.Task, 0, len(gaps))
		for i, offset := range gaps {
			done := base.AddDate(0, 0, offset)
			tasks = append(tasks, model.Task{
				ID:          string(rune('a' + i)),
				Name:        "Việc thất thường",
				Status:      model.StatusDone,
				CompletedAt: &done,
			})
		}
		if got := svc.Detect(ctx, tasks); len(got) != 0 {
			t.Errorf("expected no pattern for irregular gaps, got %+v", got)
		}
	})

	t.Run("Incomplete Tasks Do Not Count As Occurrences", func(t *testing.T) {
		tasks := completedEvery("Họp định kỳ", 2, 7)
		for i := 0; i < 3; i++ {
			tasks = append(tasks, model.Task{ID: string(rune('x' + i)), Name: "Họp định kỳ"})
		}
		got := svc.Detect(ctx, tasks)
		if len(got) != 1 {
			t.Fatalf("patterns = %d, want 1", len(got))
		}
		if got[0].Occurrences != 2 {
			t.Errorf("occurrences = %d, want 2 (only completed)", got[0].Occurrences)
		}
	})

	t.Run("Custom Interval", func(t *testing.T) {
		tasks := completedEvery("Đổ xăng xe", 5, 4)
		got := svc.Detect(ctx, tasks)
		if len(got) != 1 || got[0].Type != recurrence.TypeCustom {
			t.Fatalf("got %+v, want one custom pattern", got)
		}
		if got[0].IntervalDays != 4 {
			t.Errorf("interval = %d, want 4", got[0].IntervalDays)
		}
		if got[0].Confidence != 1 { // zero spread: 1 - 0/mean
			t.Errorf("confidence = %v, want 1", got[0].Confidence)
		}
	})
}
