// Package similarity provides the string-distance primitives used by
// pattern detection, clustering and dependency suggestion.
package similarity

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// Matches numeric dates (15/12, 15/12/2026, 2026-12-15) and bare numbers.
	datePattern   = regexp.MustCompile(`\d{1,4}[/-]\d{1,2}([/-]\d{1,4})?`)
	numberPattern = regexp.MustCompile(`\d+`)
	spacePattern  = regexp.MustCompile(`\s+`)
)

// Levenshtein returns the minimum number of single-rune edits
// (insert, delete, substitute) to transform a into b.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// Ratio returns a Levenshtein-derived similarity in [0,1]:
// 1 − distance/maxLen. Two empty strings are identical (1).
func Ratio(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(Levenshtein(a, b))/float64(maxLen)
}

// Jaccard returns intersection-over-union of the word sets of a and b.
// Both inputs are tokenized with Words. Two empty sets are identical (1).
func Jaccard(a, b string) float64 {
	setA := wordSet(Words(a))
	setB := wordSet(Words(b))
	if len(setA) == 0 && len(setB) == 0 {
		return 1
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for w := range setA {
		if setB[w] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection

	return float64(intersection) / float64(union)
}

// Words tokenizes text into lowercase words, dropping punctuation.
func Words(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	return fields
}

// NormalizeName strips dates and numbers from a task name and
// collapses whitespace, so "Báo cáo tuần 12/01" and "Báo cáo tuần
// 19/01" group together.
func NormalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = datePattern.ReplaceAllString(s, "")
	s = numberPattern.ReplaceAllString(s, "")
	s = spacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func wordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
