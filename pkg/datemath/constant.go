package datemath

import "time"

// Relative-day keywords mapped to day offsets from the reference date.
// Longer phrases are listed first so "hôm nay" wins over "nay".
var relativeDays = []struct {
	keyword string
	offset  int
}{
	{"hôm nay", 0},
	{"ngày mai", 1},
	{"ngày mốt", 2},
	{"ngày kia", 2},
	{"hôm qua", -1},
	{"hôm kia", -2},
}

// Weekday keywords. Both numeric ("thứ 5") and spelled ("thứ năm")
// forms are recognized.
var weekdays = []struct {
	keyword string
	day     time.Weekday
}{
	{"thứ hai", time.Monday},
	{"thứ 2", time.Monday},
	{"thứ ba", time.Tuesday},
	{"thứ 3", time.Tuesday},
	{"thứ tư", time.Wednesday},
	{"thứ 4", time.Wednesday},
	{"thứ năm", time.Thursday},
	{"thứ 5", time.Thursday},
	{"thứ sáu", time.Friday},
	{"thứ 6", time.Friday},
	{"thứ bảy", time.Saturday},
	{"thứ 7", time.Saturday},
	{"chủ nhật", time.Sunday},
}

const keywordLastWeek = "tuần trước"

var nextWeekKeywords = []string{"tuần sau", "tuần tới"}

// Relative-week anchors: the phrase resolves to the upcoming instance
// of the anchor weekday.
var relativeWeeks = []struct {
	keyword string
	day     time.Weekday
}{
	{"cuối tuần", time.Saturday},
	{"đầu tuần", time.Monday},
	{"giữa tuần", time.Wednesday},
}

// Special named events with approximate fixed dates (month, day).
// "trước"/"sau" shifts the anchor by a week.
var namedEvents = []struct {
	keyword    string
	month      time.Month
	day        int
	confidence float64
}{
	{"giáng sinh", time.December, 25, 0.9},
	{"noel", time.December, 25, 0.9},
	{"năm mới", time.January, 1, 0.85},
	{"tết", time.February, 10, 0.8},
}

// Time-of-day qualifiers: default hour used when no explicit hour is
// given, and whether an ambiguous 12-hour value gets 12 hours added.
var timeOfDay = []struct {
	keyword     string
	defaultHour int
	addTwelve   bool
}{
	{"sáng", 8, false},
	{"trưa", 12, false},
	{"chiều", 15, true},
	{"tối", 19, true},
	{"đêm", 21, true},
	{"khuya", 23, true},
}
