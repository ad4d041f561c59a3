package analysis

import "context"

// UseCase defines the business logic interface for the analysis domain.
type UseCase interface {
	// Analyze runs the full per-task pipeline: priority score, effort
	// estimate, decomposition and due-date parsing from the task name.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)

	// Score computes priority scores for a batch of tasks.
	Score(ctx context.Context, input ScoreInput) (ScoreOutput, error)

	// Estimate computes effort estimates for a batch of tasks.
	Estimate(ctx context.Context, input EstimateInput) (EstimateOutput, error)

	// Decompose breaks one task into subtasks and milestones.
	Decompose(ctx context.Context, input DecomposeInput) (DecomposeOutput, error)

	// DetectDependencies finds explicit ordering relations in a task list.
	DetectDependencies(ctx context.Context, input DependencyInput) (DependencyOutput, error)

	// SuggestDependencies proposes likely dependencies from deadlines
	// and phase naming.
	SuggestDependencies(ctx context.Context, input DependencyInput) (SuggestionOutput, error)

	// DetectRecurrence finds repeating patterns in completed tasks.
	DetectRecurrence(ctx context.Context, input RecurrenceInput) (RecurrenceOutput, error)

	// Cluster partitions a task list by category, project, deadline,
	// priority band and name similarity.
	Cluster(ctx context.Context, input ClusterInput) (ClusterOutput, error)

	// SuggestMerge groups near-duplicate tasks into merge candidates.
	SuggestMerge(ctx context.Context, input MergeInput) (MergeOutput, error)

	// ParseDate extracts a due date from Vietnamese free text.
	ParseDate(ctx context.Context, input ParseDateInput) (ParseDateOutput, error)
}
