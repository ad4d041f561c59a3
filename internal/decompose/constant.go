package decompose

// Strategy names, in selection order.
const (
	StrategyTemplate = "template"
	StrategyKeyword  = "keyword"
	StrategyGeneric  = "generic"
)

// Keyword patterns with canonical ordered steps, checked in order.
var keywordPatterns = []struct {
	name     string
	keywords []string
	steps    []string
}{
	{
		name:     "report",
		keywords: []string{"báo cáo", "report"},
		steps: []string{
			"Xác định nội dung báo cáo",
			"Thu thập số liệu",
			"Lập dàn ý",
			"Viết bản nháp",
			"Rà soát và chỉnh sửa",
			"Gửi báo cáo",
		},
	},
	{
		name:     "meeting",
		keywords: []string{"họp", "meeting"},
		steps: []string{
			"Xác định mục tiêu cuộc họp",
			"Chuẩn bị agenda",
			"Gửi lời mời",
			"Chuẩn bị tài liệu",
			"Ghi chú kết luận sau họp",
		},
	},
	{
		name:     "project",
		keywords: []string{"dự án", "project"},
		steps: []string{
			"Xác định phạm vi",
			"Phân tích yêu cầu",
			"Lập kế hoạch",
			"Thực hiện",
			"Kiểm tra kết quả",
			"Bàn giao",
		},
	},
	{
		name:     "research",
		keywords: []string{"nghiên cứu", "tìm hiểu", "research"},
		steps: []string{
			"Xác định câu hỏi nghiên cứu",
			"Tìm và đọc tài liệu",
			"Ghi chú các ý chính",
			"Tổng hợp kết luận",
		},
	},
	{
		name:     "study",
		keywords: []string{"học", "ôn tập", "study"},
		steps: []string{
			"Tổng hợp tài liệu",
			"Đọc và ghi chú",
			"Làm bài tập",
			"Tự kiểm tra",
		},
	},
	{
		name:     "writing",
		keywords: []string{"viết", "soạn", "write"},
		steps: []string{
			"Lên ý tưởng và dàn ý",
			"Viết bản nháp",
			"Đọc lại và chỉnh sửa",
			"Hoàn thiện bản cuối",
		},
	},
	{
		name:     "event",
		keywords: []string{"sự kiện", "tổ chức", "event"},
		steps: []string{
			"Chọn ngày và địa điểm",
			"Lên danh sách khách mời",
			"Gửi lời mời",
			"Chuẩn bị hậu cần",
			"Xác nhận nhà cung cấp",
			"Tổng duyệt",
		},
	},
}

// Generic fallback steps when nothing else matches.
var genericSteps = []string{
	"Xác định mục tiêu",
	"Thu thập thông tin",
	"Thực hiện",
	"Kiểm tra lại",
}

// Quick-action keywords for the GTD two-minute rule.
var quickActionKeywords = []string{"gọi", "gửi", "check", "xác nhận", "nhắc", "đặt lịch"}

const (
	// Minutes assigned to an extracted two-minute task.
	twoMinuteEstimate = 2
	// Consecutive subtasks folded into one consolidation phase.
	consolidationSize = 3
	// Tasks longer than this get milestones.
	milestoneThreshold = 240
	// One milestone per this many estimated minutes.
	milestoneStep = 120
	maxMilestones = 4

	// Category equality + this Jaccard threshold marks merge candidates.
	mergeThreshold = 0.4
	// Share of names a word must appear in to join the merged name.
	mergeWordShare = 0.7
)
