package priority_test

import (
	"context"
	"testing"
	"time"

	"task-intelligence/internal/model"
	"task-intelligence/internal/priority"
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

var now = time.Date(2026, 5, 6, 10, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func TestCalculateScore(t *testing.T) {
	svc := priority.New(&mockLogger{})

	t.Run("High Priority Floors Urgency And Importance", func(t *testing.T) {
		res := svc.CalculateScore(model.Task{Name: "x", Priority: model.PriorityHigh}, now)
		if res.Breakdown.Urgency < 8 {
			t.Errorf("urgency = %v, want >= 8", res.Breakdown.Urgency)
		}
		if res.Breakdown.Importance < 8 {
			t.Errorf("importance = %v, want >= 8", res.Breakdown.Importance)
		}
	})

	t.Run("Bare Task Stays In Range", func(t *testing.T) {
		res := svc.CalculateScore(model.Task{Name: ""}, now)
		if res.Score < 0 || res.Score > 100 {
			t.Errorf("score = %d, out of [0,100]", res.Score)
		}
	})

	t.Run("Overdue Task Gets Max Urgency", func(t *testing.T) {
		res := svc.CalculateScore(model.Task{
			Name:    "nộp báo cáo",
			DueDate: datePtr(now.AddDate(0, 0, -2)),
		}, now)
		if res.Breakdown.Urgency != 10 {
			t.Errorf("urgency = %v, want 10", res.Breakdown.Urgency)
		}
	})

	t.Run("Due Tomorrow Band", func(t *testing.T) {
		res := svc.CalculateScore(model.Task{
			Name:    "x",
			DueDate: datePtr(now.AddDate(0, 0, 1)),
		}, now)
		if res.Breakdown.Urgency != 9 {
			t.Errorf("urgency = %v, want 9", res.Breakdown.Urgency)
		}
	})

	t.Run("Low Priority Caps Urgency", func(t *testing.T) {
		res := svc.CalculateScore(model.Task{
			Name:     "x",
			Priority: model.PriorityLow,
			DueDate:  datePtr(now.AddDate(0, 0, 1)),
		}, now)
		if res.Breakdown.Urgency != 4 {
			t.Errorf("urgency = %v, want capped to 4", res.Breakdown.Urgency)
		}
	})

	t.Run("Emoji Raises Capped Urgency", func(t *testing.T) {
		res := svc.CalculateScore(model.Task{
			Name:     "🚨 sự cố production",
			Priority: model.PriorityLow,
		}, now)
		if res.Breakdown.Urgency != 10 {
			t.Errorf("urgency = %v, want emoji floor 10", res.Breakdown.Urgency)
		}
	})

	t.Run("Important Flag Floors Importance", func(t *testing.T) {
		res := svc.CalculateScore(model.Task{Name: "x", Important: true}, now)
		if res.Breakdown.Importance < 9 {
			t.Errorf("importance = %v, want >= 9", res.Breakdown.Importance)
		}
	})

	t.Run("Long Estimate Raises Effort", func(t *testing.T) {
		res := svc.CalculateScore(model.Task{Name: "x", EstimatedTime: 300}, now)
		if res.Breakdown.Effort != 9 {
			t.Errorf("effort = %v, want 9", res.Breakdown.Effort)
		}
	})

	t.Run("Subtasks Floor Effort", func(t *testing.T) {
		task := model.Task{Name: "x", EstimatedTime: 30}
		for i := 0; i < 5; i++ {
			task.Subtasks = append(task.Subtasks, model.Subtask{Name: "s"})
		}
		res := svc.CalculateScore(task, now)
		if res.Breakdown.Effort != 8 {
			t.Errorf("effort = %v, want floored to 8", res.Breakdown.Effort)
		}
	})

	t.Run("Blocking Wins Over BlockedBy", func(t *testing.T) {
		res := svc.CalculateScore(model.Task{
			Name:      "x",
			BlockedBy: []string{"a"},
			Blocking:  []string{"b"},
		}, now)
		if res.Breakdown.Dependencies != 9 {
			t.Errorf("dependencies = %v, want 9", res.Breakdown.Dependencies)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		task := model.Task{Name: "🔥 làm gấp", Priority: model.PriorityHigh, Blocking: []string{"b"}}
		first := svc.CalculateScore(task, now)
		second := svc.CalculateScore(task, now)
		if first.Score != second.Score || first.Level != second.Level {
			t.Errorf("score not idempotent: %+v vs %+v", first, second)
		}
	})
}

func TestScoreLevel(t *testing.T) {
	svc := priority.New(&mockLogger{})

	tests := []struct {
		score int
		want  string
	}{
		{95, "critical"}, {90, "critical"},
		{89, "high"}, {75, "high"},
		{74, "medium"}, {50, "medium"},
		{49, "low"}, {25, "low"},
		{24, "minimal"}, {0, "minimal"},
	}
	for _, tt := range tests {
		if got := svc.ScoreLevel(tt.score); got != tt.want {
			t.Errorf("ScoreLevel(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestParseEmojis(t *testing.T) {
	svc := priority.New(&mockLogger{})

	t.Run("Urgency Takes Maximum", func(t *testing.T) {
		intent := svc.ParseEmojis("⚡ rồi 🚨 nữa")
		if intent.Urgency != 10 {
			t.Errorf("urgency = %d, want max 10", intent.Urgency)
		}
	})

	t.Run("Category Last Write Wins", func(t *testing.T) {
		intent := svc.ParseEmojis("💼 việc rồi 📚 học")
		if intent.Category != "study" {
			t.Errorf("category = %q, want last emoji's %q", intent.Category, "study")
		}
	})

	t.Run("Category Kept When Later Emoji Has None", func(t *testing.T) {
		intent := svc.ParseEmojis("💼 việc 🔥 gấp")
		if intent.Category != "work" {
			t.Errorf("category = %q, want %q", intent.Category, "work")
		}
	})

	t.Run("Tags Accumulate As Set", func(t *testing.T) {
		intent := svc.ParseEmojis("🔥🚨")
		if len(intent.Tags) != 1 || intent.Tags[0] != "urgent" {
			t.Errorf("tags = %v, want [urgent]", intent.Tags)
		}
	})

	t.Run("No Emoji", func(t *testing.T) {
		intent := svc.ParseEmojis("việc bình thường")
		if intent.Urgency != 0 || intent.Importance != 0 || intent.Category != "" || len(intent.Tags) != 0 {
			t.Errorf("expected empty intent, got %+v", intent)
		}
	})
}

func TestSuggestTags(t *testing.T) {
	svc := priority.New(&mockLogger{})

	t.Run("Keyword And Deadline Tags", func(t *testing.T) {
		tags := svc.SuggestTags(model.Task{
			Name:    "viết báo cáo quý",
			DueDate: datePtr(now.AddDate(0, 0, 1)),
		}, now)
		if !contains(tags, "report") {
			t.Errorf("tags = %v, want report", tags)
		}
		if !contains(tags, "urgent") {
			t.Errorf("tags = %v, want urgent for due tomorrow", tags)
		}
	})

	t.Run("This Week Tag", func(t *testing.T) {
		tags := svc.SuggestTags(model.Task{
			Name:    "họp team",
			DueDate: datePtr(now.AddDate(0, 0, 5)),
		}, now)
		if !contains(tags, "this-week") {
			t.Errorf("tags = %v, want this-week", tags)
		}
	})

	t.Run("Existing Tags Excluded", func(t *testing.T) {
		tags := svc.SuggestTags(model.Task{
			Name: "viết báo cáo",
			Tags: []string{"report"},
		}, now)
		if contains(tags, "report") {
			t.Errorf("tags = %v, should not resuggest existing tag", tags)
		}
	})
}

func TestSuggestCategory(t *testing.T) {
	svc := priority.New(&mockLogger{})

	tests := []struct {
		name string
		task model.Task
		want string
	}{
		{name: "Work Keywords", task: model.Task{Name: "chuẩn bị họp khách hàng"}, want: "work"},
		{name: "Study Keywords", task: model.Task{Name: "ôn tập chương 3"}, want: "study"},
		{name: "Emoji Wins", task: model.Task{Name: "📚 họp nhóm"}, want: "study"},
		{name: "No Match", task: model.Task{Name: "abc xyz"}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.SuggestCategory(tt.task); got != tt.want {
				t.Errorf("SuggestCategory = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClusterTasks(t *testing.T) {
	svc := priority.New(&mockLogger{})
	ctx := context.Background()

	tasks := []model.Task{
		{ID: "1", Name: "viết báo cáo tuần", Category: "work", DueDate: datePtr(now.AddDate(0, 0, -1))},
		{ID: "2", Name: "viết báo cáo tháng", Category: "work", ProjectID: "p1"},
		{ID: "3", Name: "đi chợ mua đồ", Category: "personal", DueDate: datePtr(now)},
		{ID: "4", Name: "học tiếng anh", DueDate: datePtr(now.AddDate(0, 0, 20))},
	}

	clusters := svc.ClusterTasks(ctx, tasks, now)

	if len(clusters.ByCategory["work"]) != 2 {
		t.Errorf("work category = %d tasks, want 2", len(clusters.ByCategory["work"]))
	}
	if len(clusters.ByProject["p1"]) != 1 {
		t.Errorf("project p1 = %d tasks, want 1", len(clusters.ByProject["p1"]))
	}
	if len(clusters.ByDeadline.Overdue) != 1 || clusters.ByDeadline.Overdue[0].ID != "1" {
		t.Errorf("overdue bucket wrong: %+v", clusters.ByDeadline.Overdue)
	}
	if len(clusters.ByDeadline.Today) != 1 || clusters.ByDeadline.Today[0].ID != "3" {
		t.Errorf("today bucket wrong: %+v", clusters.ByDeadline.Today)
	}
	if len(clusters.ByDeadline.NoDeadline) != 1 {
		t.Errorf("noDeadline bucket = %d, want 1", len(clusters.ByDeadline.NoDeadline))
	}

	if len(clusters.Similar) != 1 {
		t.Fatalf("similar groups = %d, want 1", len(clusters.Similar))
	}
	got := clusters.Similar[0].TaskIDs
	if len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Errorf("similar group = %v, want [1 2]", got)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
