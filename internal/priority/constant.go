package priority

// Score weights: urgency 40%, importance 30%, effort 20%, dependencies 10%.
const (
	WeightUrgency      = 0.4
	WeightImportance   = 0.3
	WeightEffort       = 0.2
	WeightDependencies = 0.1
)

// Display bands for the final 0-100 score.
const (
	LevelCritical = "critical"
	LevelHigh     = "high"
	LevelMedium   = "medium"
	LevelLow      = "low"
	LevelMinimal  = "minimal"
)

// emojiIntent describes the signals a single emoji carries.
// Urgency/importance 0 means the emoji carries no such signal.
type emojiIntent struct {
	urgency    int
	importance int
	category   string
	tags       []string
}

// Hand-tuned emoji table. On multi-emoji text urgency/importance take
// the maximum seen, category takes the last emoji carrying one, tags
// accumulate as a set.
var emojiTable = map[string]emojiIntent{
	"🔥": {urgency: 9, tags: []string{"urgent"}},
	"🚨": {urgency: 10, importance: 8, tags: []string{"urgent"}},
	"⚡": {urgency: 8},
	"❗": {urgency: 8},
	"⏰": {urgency: 8, tags: []string{"deadline"}},
	"⭐": {importance: 9},
	"🎯": {importance: 8, tags: []string{"goal"}},
	"💎": {importance: 9},
	"💼": {category: "work", tags: []string{"work"}},
	"📊": {category: "work", tags: []string{"report"}},
	"📚": {category: "study", tags: []string{"study"}},
	"🏠": {category: "personal", tags: []string{"home"}},
	"💪": {category: "health", tags: []string{"health"}},
	"🛒": {category: "personal", tags: []string{"shopping"}},
	"💰": {category: "finance", tags: []string{"finance"}},
	"📞": {tags: []string{"call"}},
	"✉️": {tags: []string{"email"}},
}

// Keyword table for tag suggestion, matched against lowercase name+notes.
var tagKeywords = []struct {
	tag      string
	keywords []string
}{
	{"urgent", []string{"gấp", "khẩn", "urgent", "asap"}},
	{"report", []string{"báo cáo", "report"}},
	{"meeting", []string{"họp", "meeting"}},
	{"study", []string{"học", "ôn tập", "study"}},
	{"shopping", []string{"mua", "shopping"}},
	{"call", []string{"gọi", "call"}},
	{"email", []string{"email", "gửi mail"}},
	{"review", []string{"review", "kiểm tra", "rà soát"}},
}

// Keyword table for category suggestion, first match wins.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"work", []string{"báo cáo", "họp", "dự án", "khách hàng", "deadline", "công việc"}},
	{"study", []string{"học", "ôn tập", "bài tập", "thi", "khóa học"}},
	{"health", []string{"tập", "gym", "khám", "thuốc", "sức khỏe"}},
	{"finance", []string{"tiền", "thanh toán", "hóa đơn", "ngân hàng"}},
	{"personal", []string{"mua", "nhà", "gia đình", "sinh nhật"}},
}

// Deadline-derived tags.
const (
	TagUrgent   = "urgent"
	TagThisWeek = "this-week"
)

// Recommendation messages.
const (
	recOverdue      = "Task đã quá hạn, nên xử lý ngay hôm nay"
	recDoFirst      = "Điểm ưu tiên rất cao, nên làm task này trước tiên"
	recBlocked      = "Task đang bị chặn, hãy xử lý các task phụ thuộc trước"
	recBlocking     = "Task này đang chặn task khác, hoàn thành sớm sẽ mở khóa công việc"
	recManySubtasks = "Task có nhiều bước chưa xong, cân nhắc chia nhỏ hoặc dồn lực hoàn thành"
)

// Jaccard threshold for the "similar" cluster.
const similarThreshold = 0.5
