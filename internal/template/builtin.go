package template

import "task-intelligence/internal/model"

// builtinTemplates is the default template set shipped with the engine.
var builtinTemplates = []model.Template{
	{
		ID:       "tpl-report",
		Name:     "Viết báo cáo",
		Category: "work",
		Priority: model.PriorityHigh,
		Steps: []string{
			"Xác định nội dung và phạm vi báo cáo",
			"Thu thập số liệu và tài liệu",
			"Lập dàn ý",
			"Viết bản nháp",
			"Rà soát và chỉnh sửa",
			"Gửi báo cáo",
		},
		EstimatedTime: 120,
		Tags:          []string{"report", "work"},
	},
	{
		ID:       "tpl-meeting",
		Name:     "Chuẩn bị cuộc họp",
		Category: "work",
		Priority: model.PriorityMedium,
		Steps: []string{
			"Xác định mục tiêu cuộc họp",
			"Chuẩn bị agenda",
			"Gửi lời mời cho người tham dự",
			"Chuẩn bị tài liệu trình bày",
			"Đặt phòng họp",
		},
		EstimatedTime: 60,
		Tags:          []string{"meeting", "work"},
	},
	{
		ID:       "tpl-project",
		Name:     "Lập kế hoạch dự án",
		Category: "work",
		Priority: model.PriorityHigh,
		Steps: []string{
			"Xác định phạm vi và mục tiêu",
			"Phân tích yêu cầu",
			"Lập timeline và phân công",
			"Ước lượng nguồn lực",
			"Xác định rủi ro",
			"Trình phê duyệt kế hoạch",
		},
		EstimatedTime: 240,
		Tags:          []string{"project", "planning"},
	},
	{
		ID:       "tpl-study",
		Name:     "Ôn tập học bài",
		Category: "study",
		Priority: model.PriorityMedium,
		Steps: []string{
			"Tổng hợp tài liệu cần ôn",
			"Đọc và ghi chú",
			"Làm bài tập thực hành",
			"Tự kiểm tra lại kiến thức",
		},
		EstimatedTime: 90,
		Recurrence:    "daily",
		Tags:          []string{"study"},
	},
	{
		ID:       "tpl-event",
		Name:     "Tổ chức sự kiện",
		Category: "personal",
		Priority: model.PriorityMedium,
		Steps: []string{
			"Chọn ngày và địa điểm",
			"Lên danh sách khách mời",
			"Gửi lời mời",
			"Chuẩn bị hậu cần",
			"Xác nhận với nhà cung cấp",
			"Tổng duyệt trước sự kiện",
		},
		EstimatedTime: 180,
		Tags:          []string{"event"},
	},
}
