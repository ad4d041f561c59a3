package usecase

import (
	"context"
	"time"

	"task-intelligence/internal/checklist"
	"task-intelligence/internal/decompose"
	"task-intelligence/internal/dependency"
	"task-intelligence/internal/effort"
	"task-intelligence/internal/model"
	"task-intelligence/internal/priority"
	"task-intelligence/internal/recurrence"
	"task-intelligence/pkg/datemath"
)

// Mock logger for testing
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

// Mock priority service counting CalculateScore calls
type mockPriorityService struct {
	scoreCalls int
	score      priority.ScoreResult
}

func (m *mockPriorityService) CalculateScore(task model.Task, now time.Time) priority.ScoreResult {
	m.scoreCalls++
	return m.score
}

func (m *mockPriorityService) ScoreLevel(score int) string { return "medium" }

func (m *mockPriorityService) ParseEmojis(text string) priority.EmojiIntent {
	return priority.EmojiIntent{}
}

func (m *mockPriorityService) SuggestTags(task model.Task, now time.Time) []string { return nil }

func (m *mockPriorityService) SuggestCategory(task model.Task) string { return "work" }

func (m *mockPriorityService) ClusterTasks(ctx context.Context, tasks []model.Task, now time.Time) priority.Clusters {
	return priority.Clusters{}
}

// Mock dependency service counting calls
type mockDependencyService struct {
	detectCalls int
	m           dependency.Map
	suggestions []dependency.Suggestion
}

func (m *mockDependencyService) Detect(ctx context.Context, tasks []model.Task) dependency.Map {
	m.detectCalls++
	return m.m
}

func (m *mockDependencyService) Suggest(ctx context.Context, tasks []model.Task) []dependency.Suggestion {
	return m.suggestions
}

// Mock effort service counting calls
type mockEffortService struct {
	estimateCalls int
	lastTask      model.Task
	estimate      effort.Estimate
}

func (m *mockEffortService) Estimate(ctx context.Context, task model.Task, historical []model.Task) effort.Estimate {
	m.estimateCalls++
	m.lastTask = task
	return m.estimate
}

// Mock recurrence service
type mockRecurrenceService struct {
	patterns []recurrence.Pattern
}

func (m *mockRecurrenceService) Detect(ctx context.Context, tasks []model.Task) []recurrence.Pattern {
	return m.patterns
}

// Mock decompose service counting calls
type mockDecomposeService struct {
	decomposeCalls int
	result         decompose.Result
	groups         []decompose.MergeGroup
}

func (m *mockDecomposeService) Decompose(ctx context.Context, task model.Task, opts decompose.Options) decompose.Result {
	m.decomposeCalls++
	return m.result
}

func (m *mockDecomposeService) SuggestMerge(ctx context.Context, tasks []model.Task) []decompose.MergeGroup {
	return m.groups
}

// newTestUseCase wires a usecase over mocks and a fixed clock.
func newTestUseCase() (*implUseCase, *mockPriorityService, *mockEffortService, *mockDecomposeService) {
	prioritySvc := &mockPriorityService{score: priority.ScoreResult{Score: 62, Level: "medium"}}
	effortSvc := &mockEffortService{estimate: effort.Estimate{Minutes: 30, Confidence: 0.3, Source: effort.SourceDefault}}
	decomposeSvc := &mockDecomposeService{result: decompose.Result{Strategy: decompose.StrategyGeneric}}

	dateMath, _ := datemath.NewParser("Asia/Ho_Chi_Minh")

	uc := New(
		&mockLogger{},
		prioritySvc,
		&mockDependencyService{},
		effortSvc,
		&mockRecurrenceService{},
		decomposeSvc,
		checklist.New(),
		nil,
		dateMath,
		CacheConfig{},
	)
	uc.clock = func() time.Time {
		return time.Date(2026, 5, 6, 10, 0, 0, 0, time.UTC)
	}

	return uc, prioritySvc, effortSvc, decomposeSvc
}
