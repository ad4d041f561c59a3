// Package template provides the in-memory task template library used
// by effort estimation and decomposition.
package template

import (
	"sort"

	"task-intelligence/internal/model"
	"task-intelligence/pkg/similarity"
)

// Relevance floor for SuggestFromName; matches below this are noise.
const minRelevance = 0.2

type library struct {
	templates []model.Template
	byID      map[string]model.Template
}

// New creates a library over the given templates. With no templates,
// the builtin set is used.
func New(templates []model.Template) Library {
	if len(templates) == 0 {
		templates = builtinTemplates
	}
	byID := make(map[string]model.Template, len(templates))
	for _, t := range templates {
		byID[t.ID] = t
	}
	return &library{templates: templates, byID: byID}
}

// SuggestFromName ranks templates by Jaccard word overlap with the
// task name, best first. A template whose name is wholly contained in
// the task name ranks as an exact-grade match.
func (lib *library) SuggestFromName(name string) []model.Template {
	if name == "" {
		return nil
	}

	type ranked struct {
		tpl   model.Template
		score float64
	}

	matches := make([]ranked, 0, len(lib.templates))
	for _, tpl := range lib.templates {
		score := similarity.Jaccard(name, tpl.Name)
		if containsAllWords(name, tpl.Name) {
			score = 1
		}
		if score < minRelevance {
			continue
		}
		matches = append(matches, ranked{tpl: tpl, score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	out := make([]model.Template, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.tpl)
	}
	return out
}

// Get returns a copy of the template with the given id.
func (lib *library) Get(id string) *model.Template {
	tpl, ok := lib.byID[id]
	if !ok {
		return nil
	}
	return &tpl
}

// containsAllWords reports whether every significant word of needle
// appears among haystack's words.
func containsAllWords(haystack, needle string) bool {
	hay := make(map[string]bool)
	for _, w := range similarity.Words(haystack) {
		hay[w] = true
	}
	words := similarity.Words(needle)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !hay[w] {
			return false
		}
	}
	return true
}
