package datemath

import "time"

// Result holds the outcome of parsing a natural-language date/time
// expression. Date carries the resolved calendar date; when HasTime is
// true its hour/minute fields are meaningful as well.
type Result struct {
	Date       time.Time
	HasTime    bool
	Confidence float64
	Detected   string
}

// dateMatch is the intermediate result of a single date strategy.
type dateMatch struct {
	date       time.Time
	confidence float64
	detected   string
}

// timeMatch is the result of the independent time-of-day pass.
type timeMatch struct {
	hour, minute int
	detected     string
}
