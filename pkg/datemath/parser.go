// Package datemath parses Vietnamese natural-language date/time
// expressions ("ngày mai", "thứ 5 tuần sau", "15/12/2026", "3 giờ
// chiều") into absolute calendar dates with a confidence score.
package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	numericDatePattern = regexp.MustCompile(`(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?`)
	dayOfMonthPattern  = regexp.MustCompile(`ngày\s+(\d{1,2})\b`)
	namedMonthPattern  = regexp.MustCompile(`tháng\s+(\d{1,2})\b`)

	clockPattern     = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	hourWordPattern  = regexp.MustCompile(`(\d{1,2})\s*giờ(?:\s*(\d{1,2}))?`)
	hourShortPattern = regexp.MustCompile(`(\d{1,2})h(\d{2})?\b`)
)

// Parser resolves natural-language expressions against a reference
// time in a fixed timezone.
type Parser struct {
	location   *time.Location
	strategies []strategy
}

// strategy is one named date-resolution rule. Strategies run in slice
// order and the first non-nil match wins; the order is load-bearing
// and covered by tests.
type strategy struct {
	name  string
	parse func(p *Parser, text string, base time.Time) *dateMatch
}

// NewParser creates a parser for the given IANA timezone string,
// e.g. "Asia/Ho_Chi_Minh".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	p := &Parser{location: loc}
	p.strategies = []strategy{
		{name: "relative-day", parse: (*Parser).parseRelativeDay},
		{name: "weekday", parse: (*Parser).parseWeekday},
		{name: "relative-week", parse: (*Parser).parseRelativeWeek},
		{name: "month", parse: (*Parser).parseMonth},
		{name: "numeric-date", parse: (*Parser).parseNumericDate},
		{name: "named-event", parse: (*Parser).parseNamedEvent},
	}
	return p, nil
}

// Parse resolves text against the reference time. The date and time
// portions are parsed independently and merged; a time of day without
// any date is not a match. Returns nil when no date was found.
func (p *Parser) Parse(text string, base time.Time) *Result {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return nil
	}

	var match *dateMatch
	for _, s := range p.strategies {
		if m := s.parse(p, text, base); m != nil {
			match = m
			break
		}
	}
	if match == nil {
		return nil
	}

	result := &Result{
		Date:       match.date,
		Confidence: match.confidence,
		Detected:   match.detected,
	}

	if tm := p.parseTime(text); tm != nil {
		d := match.date
		result.Date = time.Date(d.Year(), d.Month(), d.Day(), tm.hour, tm.minute, 0, 0, p.location)
		result.HasTime = true
		result.Detected = match.detected + " " + tm.detected
	}

	return result
}

// parseRelativeDay handles "hôm nay", "ngày mai", "hôm qua", ...
func (p *Parser) parseRelativeDay(text string, base time.Time) *dateMatch {
	for _, rd := range relativeDays {
		if strings.Contains(text, rd.keyword) {
			return &dateMatch{
				date:       p.startOfDay(base.AddDate(0, 0, rd.offset)),
				confidence: 0.95,
				detected:   rd.keyword,
			}
		}
	}
	return nil
}

// parseWeekday handles "thứ 5", "chủ nhật", optionally combined with
// "tuần sau"/"tuần trước". A weekday already past this week rolls
// forward 7 days unless "tuần trước" is present.
func (p *Parser) parseWeekday(text string, base time.Time) *dateMatch {
	for _, wd := range weekdays {
		if !strings.Contains(text, wd.keyword) {
			continue
		}

		offset := int(wd.day) - int(base.In(p.location).Weekday())
		detected := wd.keyword

		switch {
		case containsAny(text, nextWeekKeywords):
			offset += 7
			detected += " tuần sau"
		case strings.Contains(text, keywordLastWeek):
			offset -= 7
			detected += " " + keywordLastWeek
		default:
			if offset < 0 {
				offset += 7
			}
		}

		return &dateMatch{
			date:       p.startOfDay(base.AddDate(0, 0, offset)),
			confidence: 0.9,
			detected:   detected,
		}
	}
	return nil
}

// parseRelativeWeek handles "cuối tuần" (next Saturday), "đầu tuần"
// (next Monday) and "giữa tuần" (next Wednesday).
func (p *Parser) parseRelativeWeek(text string, base time.Time) *dateMatch {
	for _, rw := range relativeWeeks {
		if !strings.Contains(text, rw.keyword) {
			continue
		}

		offset := int(rw.day) - int(base.In(p.location).Weekday())
		if offset <= 0 {
			offset += 7
		}

		return &dateMatch{
			date:       p.startOfDay(base.AddDate(0, 0, offset)),
			confidence: 0.85,
			detected:   rw.keyword,
		}
	}
	return nil
}

// parseMonth handles "cuối tháng", "đầu tháng sau" and named months
// ("tháng 12", optionally "ngày 20 tháng 12"). A named-month date
// without an explicit day defaults to the 15th; a resolved date
// already in the past rolls to next year.
func (p *Parser) parseMonth(text string, base time.Time) *dateMatch {
	now := base.In(p.location)

	if strings.Contains(text, "cuối tháng") {
		firstOfNext := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, p.location).AddDate(0, 1, 0)
		return &dateMatch{
			date:       firstOfNext.AddDate(0, 0, -1),
			confidence: 0.85,
			detected:   "cuối tháng",
		}
	}

	if strings.Contains(text, "đầu tháng sau") {
		return &dateMatch{
			date:       time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, p.location).AddDate(0, 1, 0),
			confidence: 0.85,
			detected:   "đầu tháng sau",
		}
	}

	m := namedMonthPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	month, _ := strconv.Atoi(m[1])
	if month < 1 || month > 12 {
		return nil
	}

	day := 15
	confidence := 0.8
	detected := m[0]
	if dm := dayOfMonthPattern.FindStringSubmatch(text); dm != nil {
		if d, _ := strconv.Atoi(dm[1]); d >= 1 && d <= 31 {
			day = d
			confidence = 0.85
			detected = dm[0] + " " + m[0]
		}
	}

	date := time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, p.location)
	if date.Month() != time.Month(month) || date.Day() != day {
		return nil
	}
	if date.Before(p.startOfDay(base)) {
		date = date.AddDate(1, 0, 0)
	}

	return &dateMatch{date: date, confidence: confidence, detected: detected}
}

// parseNumericDate handles "DD/MM", "DD/MM/YYYY" and bare "ngày N"
// (day of the current month, rolling to next month if already past).
// Invalid dates that do not round-trip (31/13) are rejected.
func (p *Parser) parseNumericDate(text string, base time.Time) *dateMatch {
	now := base.In(p.location)

	if m := numericDatePattern.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])

		year := now.Year()
		confidence := 0.85
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			if year < 100 {
				year += 2000
			}
			confidence = 0.95
		}

		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
		if int(date.Month()) != month || date.Day() != day || date.Year() != year {
			return nil
		}

		return &dateMatch{date: date, confidence: confidence, detected: m[0]}
	}

	if m := dayOfMonthPattern.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		if day < 1 || day > 31 {
			return nil
		}

		date := time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, p.location)
		if date.Day() != day {
			return nil
		}
		if date.Before(p.startOfDay(base)) {
			date = date.AddDate(0, 1, 0)
			if date.Day() != day {
				return nil
			}
		}

		return &dateMatch{date: date, confidence: 0.75, detected: m[0]}
	}

	return nil
}

// parseNamedEvent handles Tết, Christmas and New Year with
// approximate fixed dates, shiftable a week by "trước"/"sau".
func (p *Parser) parseNamedEvent(text string, base time.Time) *dateMatch {
	now := base.In(p.location)

	for _, ev := range namedEvents {
		if !strings.Contains(text, ev.keyword) {
			continue
		}

		date := time.Date(now.Year(), ev.month, ev.day, 0, 0, 0, 0, p.location)
		if date.Before(p.startOfDay(base)) {
			date = date.AddDate(1, 0, 0)
		}

		confidence := ev.confidence
		detected := ev.keyword
		if strings.Contains(text, "trước "+ev.keyword) {
			date = date.AddDate(0, 0, -7)
			detected = "trước " + ev.keyword
			confidence = maxFloat(0.7, confidence-0.1)
		} else if strings.Contains(text, "sau "+ev.keyword) {
			date = date.AddDate(0, 0, 7)
			detected = "sau " + ev.keyword
			confidence = maxFloat(0.7, confidence-0.1)
		}

		return &dateMatch{date: date, confidence: confidence, detected: detected}
	}
	return nil
}

// parseTime matches H:MM, "H giờ MM", HhMM and "H giờ", then adjusts
// for a time-of-day qualifier. With no explicit hour but a qualifier
// present, the period's default hour is used.
func (p *Parser) parseTime(text string) *timeMatch {
	var tm *timeMatch

	if m := clockPattern.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour <= 23 && minute <= 59 {
			tm = &timeMatch{hour: hour, minute: minute, detected: m[0]}
		}
	}
	if tm == nil {
		if m := hourWordPattern.FindStringSubmatch(text); m != nil {
			hour, _ := strconv.Atoi(m[1])
			minute := 0
			if m[2] != "" {
				minute, _ = strconv.Atoi(m[2])
			}
			if hour <= 23 && minute <= 59 {
				tm = &timeMatch{hour: hour, minute: minute, detected: m[0]}
			}
		}
	}
	if tm == nil {
		if m := hourShortPattern.FindStringSubmatch(text); m != nil {
			hour, _ := strconv.Atoi(m[1])
			minute := 0
			if m[2] != "" {
				minute, _ = strconv.Atoi(m[2])
			}
			if hour <= 23 && minute <= 59 {
				tm = &timeMatch{hour: hour, minute: minute, detected: m[0]}
			}
		}
	}

	for _, tod := range timeOfDay {
		if !strings.Contains(text, tod.keyword) {
			continue
		}
		if tm == nil {
			return &timeMatch{hour: tod.defaultHour, detected: tod.keyword}
		}
		if tod.addTwelve && tm.hour < 12 {
			tm.hour += 12
		}
		tm.detected += " " + tod.keyword
		return tm
	}

	return tm
}

// startOfDay returns midnight of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
