package dependency_test

import (
	"context"
	"testing"
	"time"

	"task-intelligence/internal/dependency"
	"task-intelligence/internal/model"
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

func datePtr(t time.Time) *time.Time { return &t }

func TestDetect(t *testing.T) {
	svc := dependency.New(&mockLogger{})
	ctx := context.Background()

	t.Run("After Keyword Means Blocked By", func(t *testing.T) {
		tasks := []model.Task{
			{ID: "a", Name: "Deploy sau khi hoàn thành kiểm thử hệ thống"},
			{ID: "b", Name: "Kiểm thử hệ thống"},
		}
		m := svc.Detect(ctx, tasks)
		if len(m.BlockedBy["a"]) != 1 || m.BlockedBy["a"][0] != "b" {
			t.Errorf("BlockedBy[a] = %v, want [b]", m.BlockedBy["a"])
		}
		if len(m.Blocking["b"]) != 1 || m.Blocking["b"][0] != "a" {
			t.Errorf("Blocking[b] = %v, want [a]", m.Blocking["b"])
		}
	})

	t.Run("Before Keyword Means Blocking", func(t *testing.T) {
		tasks := []model.Task{
			{ID: "a", Name: "Thu thập dữ liệu trước khi viết báo cáo tài chính"},
			{ID: "b", Name: "Viết báo cáo tài chính"},
		}
		m := svc.Detect(ctx, tasks)
		if len(m.Blocking["a"]) != 1 || m.Blocking["a"][0] != "b" {
			t.Errorf("Blocking[a] = %v, want [b]", m.Blocking["a"])
		}
		if len(m.BlockedBy["b"]) != 1 || m.BlockedBy["b"][0] != "a" {
			t.Errorf("BlockedBy[b] = %v, want [a]", m.BlockedBy["b"])
		}
	})

	t.Run("Reference Without Direction Keyword Is Ignored", func(t *testing.T) {
		tasks := []model.Task{
			{ID: "a", Name: "Liên quan kiểm thử hệ thống"},
			{ID: "b", Name: "Kiểm thử hệ thống"},
		}
		m := svc.Detect(ctx, tasks)
		if len(m.BlockedBy) != 0 || len(m.Blocking) != 0 {
			t.Errorf("expected empty maps, got %+v", m)
		}
	})

	t.Run("No Self References Or Duplicates", func(t *testing.T) {
		tasks := []model.Task{
			{ID: "a", Name: "Deploy", Notes: "sau khi kiểm thử hệ thống, chờ kiểm thử hệ thống xong"},
			{ID: "b", Name: "Kiểm thử hệ thống"},
		}
		m := svc.Detect(ctx, tasks)
		if len(m.BlockedBy["a"]) != 1 {
			t.Errorf("BlockedBy[a] = %v, want exactly one entry", m.BlockedBy["a"])
		}
		for id, blockers := range m.BlockedBy {
			for _, blocker := range blockers {
				if id == blocker {
					t.Errorf("self reference in map: %s", id)
				}
			}
		}
	})

	t.Run("Unrelated Tasks Produce Nothing", func(t *testing.T) {
		tasks := []model.Task{
			{ID: "a", Name: "Mua rau sau khi tan làm"},
			{ID: "b", Name: "Viết luận văn"},
		}
		m := svc.Detect(ctx, tasks)
		if len(m.BlockedBy) != 0 {
			t.Errorf("expected no edges, got %+v", m.BlockedBy)
		}
	})
}

func TestSuggest(t *testing.T) {
	svc := dependency.New(&mockLogger{})
	ctx := context.Background()
	base := time.Date(2026, 5, 6, 0, 0, 0, 0, time.UTC)

	t.Run("Deadline Adjacency Within Project", func(t *testing.T) {
		tasks := []model.Task{
			{ID: "a", Name: "Thiết kế", ProjectID: "p1", Category: "work", DueDate: datePtr(base)},
			{ID: "b", Name: "Triển khai", ProjectID: "p1", Category: "work", DueDate: datePtr(base.AddDate(0, 0, 2))},
			{ID: "c", Name: "Tài liệu", ProjectID: "p1", Category: "docs", DueDate: datePtr(base.AddDate(0, 0, 3))},
		}
		got := svc.Suggest(ctx, tasks)
		if len(got) != 1 {
			t.Fatalf("suggestions = %d, want 1", len(got))
		}
		if got[0].From != "a" || got[0].To != "b" || got[0].Confidence != 0.6 {
			t.Errorf("unexpected suggestion: %+v", got[0])
		}
	})

	t.Run("Large Gap Not Suggested", func(t *testing.T) {
		tasks := []model.Task{
			{ID: "a", Name: "Thiết kế", ProjectID: "p1", Category: "work", DueDate: datePtr(base)},
			{ID: "b", Name: "Triển khai", ProjectID: "p1", Category: "work", DueDate: datePtr(base.AddDate(0, 0, 10))},
		}
		if got := svc.Suggest(ctx, tasks); len(got) != 0 {
			t.Errorf("suggestions = %v, want none", got)
		}
	})

	t.Run("Phase Chain", func(t *testing.T) {
		tasks := []model.Task{
			{ID: "x", Name: "Giai đoạn 3: nghiệm thu"},
			{ID: "y", Name: "Giai đoạn 1: khảo sát"},
			{ID: "z", Name: "Giai đoạn 2: thi công"},
		}
		got := svc.Suggest(ctx, tasks)
		if len(got) != 2 {
			t.Fatalf("suggestions = %d, want 2", len(got))
		}
		if got[0].From != "y" || got[0].To != "z" || got[0].Confidence != 0.9 {
			t.Errorf("first link = %+v, want y->z at 0.9", got[0])
		}
		if got[1].From != "z" || got[1].To != "x" {
			t.Errorf("second link = %+v, want z->x", got[1])
		}
	})

	t.Run("Phase Suggestions Appended After Deadline Ones", func(t *testing.T) {
		tasks := []model.Task{
			{ID: "a", Name: "Bước 1 chuẩn bị", ProjectID: "p1", Category: "work", DueDate: datePtr(base)},
			{ID: "b", Name: "Bước 2 thực hiện", ProjectID: "p1", Category: "work", DueDate: datePtr(base.AddDate(0, 0, 1))},
		}
		got := svc.Suggest(ctx, tasks)
		if len(got) != 2 {
			t.Fatalf("suggestions = %d, want 2", len(got))
		}
		if got[0].Confidence != 0.6 || got[1].Confidence != 0.9 {
			t.Errorf("unexpected order: %+v", got)
		}
	})
}
