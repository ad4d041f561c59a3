package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"task-intelligence/internal/analysis"
	"task-intelligence/internal/model"
	"task-intelligence/pkg/datemath"
)

// resolveNow parses the optional reference instant. Empty input means
// the wall clock.
func (uc *implUseCase) resolveNow(raw string) (time.Time, error) {
	if raw == "" {
		return uc.clock(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, analysis.ErrBadDate
}

// normalizeTasks converts raw payload tasks to canonical form.
func normalizeTasks(raw []model.RawTask) []model.Task {
	tasks := make([]model.Task, 0, len(raw))
	for _, r := range raw {
		tasks = append(tasks, r.Normalize())
	}
	return tasks
}

// fingerprint derives the cache key for a full analysis: the task,
// its history and the reference day. Score bands move with the day,
// so the key does too.
func fingerprint(task model.Task, historical []model.Task, now time.Time) string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	_ = enc.Encode(task)
	_ = enc.Encode(historical)
	_, _ = h.Write([]byte(now.Format("2006-01-02")))
	return hex.EncodeToString(h.Sum(nil))
}

// toParsedDate converts a datemath result, nil in nil out.
func toParsedDate(r *datemath.Result) *analysis.ParsedDate {
	if r == nil {
		return nil
	}
	return &analysis.ParsedDate{
		Date:       r.Date,
		HasTime:    r.HasTime,
		Confidence: r.Confidence,
		Detected:   r.Detected,
	}
}
