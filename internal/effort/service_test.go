package effort_test

import (
	"context"
	"testing"

	"task-intelligence/internal/effort"
	"task-intelligence/internal/model"
	"task-intelligence/internal/template"
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

type mockPredictor struct {
	minutes int
	ok      bool
}

func (m *mockPredictor) PredictMinutes(name string) (int, bool) { return m.minutes, m.ok }

func historyOf(category string, times ...int) []model.Task {
	tasks := make([]model.Task, 0, len(times))
	for _, m := range times {
		tasks = append(tasks, model.Task{Category: category, ActualTime: m, Status: model.StatusDone})
	}
	return tasks
}

func TestEstimate(t *testing.T) {
	ctx := context.Background()
	lib := template.New(nil)

	t.Run("User Defined Wins Over Everything", func(t *testing.T) {
		svc := effort.New(&mockLogger{}, lib, &mockPredictor{minutes: 99, ok: true})
		got := svc.Estimate(ctx, model.Task{
			Name:          "Viết báo cáo", // would also match template and keywords
			Category:      "work",
			EstimatedTime: 90,
		}, historyOf("work", 10, 20, 30))

		if got.Minutes != 90 || got.Source != effort.SourceUserDefined || got.Confidence != 0.9 {
			t.Errorf("got %+v, want 90m user-defined 0.9", got)
		}
	})

	t.Run("Template Match", func(t *testing.T) {
		svc := effort.New(&mockLogger{}, lib, nil)
		got := svc.Estimate(ctx, model.Task{Name: "Viết báo cáo quý"}, nil)
		if got.Source != effort.SourceTemplate || got.Minutes != 120 || got.Confidence != 0.7 {
			t.Errorf("got %+v, want template 120m 0.7", got)
		}
	})

	t.Run("Historical Average", func(t *testing.T) {
		svc := effort.New(&mockLogger{}, nil, nil)
		got := svc.Estimate(ctx, model.Task{Name: "task lạ", Category: "ops"},
			historyOf("ops", 30, 60, 90, 60))

		if got.Source != effort.SourceHistorical {
			t.Fatalf("source = %s, want historical", got.Source)
		}
		if got.Minutes != 60 {
			t.Errorf("minutes = %d, want 60", got.Minutes)
		}
		if got.Confidence < 0.7-1e-9 || got.Confidence > 0.7+1e-9 { // 0.5 + 0.05*4
			t.Errorf("confidence = %v, want 0.7", got.Confidence)
		}
	})

	t.Run("Historical Needs Three Samples", func(t *testing.T) {
		svc := effort.New(&mockLogger{}, nil, nil)
		got := svc.Estimate(ctx, model.Task{Name: "task lạ", Category: "ops"},
			historyOf("ops", 30, 60))
		if got.Source == effort.SourceHistorical {
			t.Errorf("historical used with only 2 samples")
		}
	})

	t.Run("Historical Confidence Capped", func(t *testing.T) {
		svc := effort.New(&mockLogger{}, nil, nil)
		got := svc.Estimate(ctx, model.Task{Name: "task lạ", Category: "ops"},
			historyOf("ops", 10, 10, 10, 10, 10, 10, 10, 10))
		if got.Confidence != 0.8 {
			t.Errorf("confidence = %v, want capped 0.8", got.Confidence)
		}
	})

	t.Run("Memory Prediction", func(t *testing.T) {
		svc := effort.New(&mockLogger{}, nil, &mockPredictor{minutes: 75, ok: true})
		got := svc.Estimate(ctx, model.Task{Name: "task lạ"}, nil)
		if got.Source != effort.SourceAIMemory || got.Minutes != 75 || got.Confidence != 0.6 {
			t.Errorf("got %+v, want ai-memory 75m 0.6", got)
		}
	})

	t.Run("Keyword Bands In Fixed Order", func(t *testing.T) {
		svc := effort.New(&mockLogger{}, nil, nil)

		// "gọi" (quick) wins over "báo cáo" (long) because quick is
		// checked first.
		got := svc.Estimate(ctx, model.Task{Name: "gọi hỏi về báo cáo"}, nil)
		if got.Minutes != 15 || got.Source != effort.SourceKeywordAnalysis {
			t.Errorf("got %+v, want quick band 15m", got)
		}

		got = svc.Estimate(ctx, model.Task{Name: "phân tích số liệu"}, nil)
		if got.Minutes != 120 {
			t.Errorf("got %+v, want long band 120m", got)
		}
	})

	t.Run("Default Fallback", func(t *testing.T) {
		svc := effort.New(&mockLogger{}, nil, nil)
		got := svc.Estimate(ctx, model.Task{Name: "xyz"}, nil)
		if got.Minutes != 30 || got.Source != effort.SourceDefault || got.Confidence != 0.3 {
			t.Errorf("got %+v, want default 30m 0.3", got)
		}
	})

	t.Run("Subtask Overhead Applies To Any Source", func(t *testing.T) {
		svc := effort.New(&mockLogger{}, nil, nil)
		got := svc.Estimate(ctx, model.Task{
			Name:          "việc chính",
			EstimatedTime: 60,
			Subtasks: []model.Subtask{
				{Name: "a"},
				{Name: "b", Done: true},
				{Name: "c"},
			},
		}, nil)

		if got.Minutes != 90 {
			t.Errorf("minutes = %d, want 60 + 2x15", got.Minutes)
		}
		if got.Breakdown == nil {
			t.Fatal("expected breakdown")
		}
		if got.Breakdown.BaseTime != 60 || got.Breakdown.SubtasksTime != 30 || got.Breakdown.SubtasksCount != 2 {
			t.Errorf("breakdown = %+v", got.Breakdown)
		}
	})

	t.Run("No Subtask Overhead Without Incomplete Subtasks", func(t *testing.T) {
		svc := effort.New(&mockLogger{}, nil, nil)
		got := svc.Estimate(ctx, model.Task{
			Name:          "việc chính",
			EstimatedTime: 60,
			Subtasks:      []model.Subtask{{Name: "a", Done: true}},
		}, nil)
		if got.Minutes != 60 || got.Breakdown != nil {
			t.Errorf("got %+v, want plain 60m", got)
		}
	})
}
