package effort

// Keyword bands checked in this fixed order; the first band with a
// matching keyword wins.
var keywordBands = []struct {
	name     string
	minutes  int
	keywords []string
}{
	{"quick", 15, []string{"gọi", "check", "xác nhận", "nhắc"}},
	{"short", 20, []string{"email", "gửi", "đọc", "trả lời"}},
	{"medium", 45, []string{"viết", "họp", "chuẩn bị", "review"}},
	{"long", 120, []string{"báo cáo", "phân tích", "nghiên cứu", "thiết kế"}},
	{"veryLong", 240, []string{"dự án", "luận văn", "xây dựng hệ thống"}},
}

const (
	confidenceUserDefined = 0.9
	confidenceTemplate    = 0.7
	confidenceAIMemory    = 0.6
	confidenceKeyword     = 0.5
	confidenceDefault     = 0.3

	// Historical confidence: 0.5 + 0.05 per sample, capped at 0.8.
	historicalBase    = 0.5
	historicalPerItem = 0.05
	historicalCap     = 0.8
	historicalMinimum = 3

	defaultMinutes = 30

	// Overhead added per incomplete subtask.
	minutesPerSubtask = 15
)
