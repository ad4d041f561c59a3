package dependency

// Direction triggers matched against the referencing task's text.
// "before"-class: the referencing task must finish first (it blocks
// the referenced one). "after"/"requires"-class: the referencing task
// waits on the referenced one.
var (
	beforeKeywords = []string{"trước khi", "trước lúc", "rồi mới", "before", "để chuẩn bị cho"}
	afterKeywords  = []string{"sau khi", "sau lúc", "cần có", "phụ thuộc", "after", "requires", "chờ"}
)

// Phase naming patterns chained numerically at high confidence.
var phasePatterns = []string{
	`giai đoạn\s+(\d+)`,
	`phase\s+(\d+)`,
	`bước\s+(\d+)`,
	`step\s+(\d+)`,
}

const (
	// Minimum word length for reference word matching.
	refWordMinLen = 3
	// Share of a task's long words that must appear in the
	// referencing text.
	refWordShare = 0.5

	// Gap in days for deadline-adjacency suggestions.
	deadlineGapDays = 3

	confidenceDeadline = 0.6
	confidencePhase    = 0.9
)
