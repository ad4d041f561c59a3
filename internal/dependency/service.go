// Package dependency infers ordering relations between tasks from
// textual references and suggests likely dependencies from project
// deadlines and phase naming.
package dependency

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"task-intelligence/internal/model"
	"task-intelligence/pkg/log"
	"task-intelligence/pkg/similarity"
)

// Service is the dependency-inference interface.
type Service interface {
	// Detect finds explicit ordering relations from task text.
	Detect(ctx context.Context, tasks []model.Task) Map

	// Suggest proposes likely dependencies from deadline adjacency
	// and phase naming. Phase-based suggestions are appended after
	// deadline-based ones: computed later, they override by position
	// when both apply to the same pair.
	Suggest(ctx context.Context, tasks []model.Task) []Suggestion
}

type service struct {
	l        log.Logger
	phaseRes []*regexp.Regexp
}

// New creates a dependency inference service.
func New(l log.Logger) Service {
	res := make([]*regexp.Regexp, 0, len(phasePatterns))
	for _, p := range phasePatterns {
		res = append(res, regexp.MustCompile(p))
	}
	return &service{l: l, phaseRes: res}
}

// Detect checks every ordered pair (A,B): when A's name+notes text
// references B's name, direction keywords in A's text classify the
// relation. Maps stay symmetric and duplicate-free.
func (s *service) Detect(ctx context.Context, tasks []model.Task) Map {
	m := Map{
		BlockedBy: make(map[string][]string),
		Blocking:  make(map[string][]string),
	}

	for _, a := range tasks {
		text := a.SearchText()
		for _, b := range tasks {
			if a.ID == b.ID || b.Name == "" {
				continue
			}
			if !references(text, b.Name) {
				continue
			}

			switch {
			case containsAny(text, beforeKeywords):
				// A must finish before B.
				addEdge(&m, b.ID, a.ID)
			case containsAny(text, afterKeywords):
				// A waits on B.
				addEdge(&m, a.ID, b.ID)
			}
		}
	}

	s.l.Debugf(ctx, "detected dependencies for %d tasks: %d blocked", len(tasks), len(m.BlockedBy))
	return m
}

// references reports whether text mentions name: verbatim substring,
// or at least half of name's words longer than refWordMinLen appear
// in text.
func references(text, name string) bool {
	lowerName := strings.ToLower(name)
	if strings.Contains(text, lowerName) {
		return true
	}

	longWords := 0
	matched := 0
	for _, w := range similarity.Words(lowerName) {
		if len([]rune(w)) <= refWordMinLen {
			continue
		}
		longWords++
		if strings.Contains(text, w) {
			matched++
		}
	}
	if longWords == 0 {
		return false
	}
	return float64(matched)/float64(longWords) >= refWordShare
}

// addEdge records "blocker blocks blocked", skipping self-references
// and duplicate ordered pairs.
func addEdge(m *Map, blocked, blocker string) {
	if blocked == blocker {
		return
	}
	for _, existing := range m.BlockedBy[blocked] {
		if existing == blocker {
			return
		}
	}
	m.BlockedBy[blocked] = append(m.BlockedBy[blocked], blocker)
	m.Blocking[blocker] = append(m.Blocking[blocker], blocked)
}

// Suggest combines deadline-adjacency and phase-chain heuristics.
func (s *service) Suggest(ctx context.Context, tasks []model.Task) []Suggestion {
	suggestions := s.suggestByDeadline(tasks)
	suggestions = append(suggestions, s.suggestByPhase(tasks)...)

	s.l.Debugf(ctx, "suggested %d dependencies for %d tasks", len(suggestions), len(tasks))
	return suggestions
}

// suggestByDeadline sorts each project's dated tasks by due date and
// links consecutive same-category pairs no more than deadlineGapDays
// apart.
func (s *service) suggestByDeadline(tasks []model.Task) []Suggestion {
	byProject := make(map[string][]model.Task)
	projects := make([]string, 0)
	for _, t := range tasks {
		if t.ProjectID == "" || t.DueDate == nil {
			continue
		}
		if _, ok := byProject[t.ProjectID]; !ok {
			projects = append(projects, t.ProjectID)
		}
		byProject[t.ProjectID] = append(byProject[t.ProjectID], t)
	}

	suggestions := make([]Suggestion, 0)
	for _, project := range projects {
		group := byProject[project]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].DueDate.Before(*group[j].DueDate)
		})

		for i := 0; i+1 < len(group); i++ {
			earlier, later := group[i], group[i+1]
			if earlier.Category != later.Category {
				continue
			}
			gap := later.DueDate.Sub(*earlier.DueDate).Hours() / 24
			if gap > deadlineGapDays {
				continue
			}
			suggestions = append(suggestions, Suggestion{
				From:       earlier.ID,
				To:         later.ID,
				Reason:     fmt.Sprintf("Cùng dự án %s, deadline cách nhau %.0f ngày", project, gap),
				Confidence: confidenceDeadline,
			})
		}
	}

	return suggestions
}

// suggestByPhase finds "giai đoạn N"/"bước N"/"phase N"/"step N"
// naming, sorts numerically and chains consecutive tasks.
func (s *service) suggestByPhase(tasks []model.Task) []Suggestion {
	type phased struct {
		id  string
		num int
	}

	phasedTasks := make([]phased, 0)
	for _, t := range tasks {
		name := strings.ToLower(t.Name)
		for _, re := range s.phaseRes {
			m := re.FindStringSubmatch(name)
			if m == nil {
				continue
			}
			num, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			phasedTasks = append(phasedTasks, phased{id: t.ID, num: num})
			break
		}
	}

	sort.SliceStable(phasedTasks, func(i, j int) bool {
		return phasedTasks[i].num < phasedTasks[j].num
	})

	suggestions := make([]Suggestion, 0, len(phasedTasks))
	for i := 0; i+1 < len(phasedTasks); i++ {
		suggestions = append(suggestions, Suggestion{
			From:       phasedTasks[i].id,
			To:         phasedTasks[i+1].id,
			Reason:     fmt.Sprintf("Thứ tự giai đoạn: %d trước %d", phasedTasks[i].num, phasedTasks[i+1].num),
			Confidence: confidencePhase,
		})
	}

	return suggestions
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
