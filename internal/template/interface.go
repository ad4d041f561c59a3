package template

import "task-intelligence/internal/model"

// Library exposes read-only task templates. The engine treats the
// library as an external collaborator: templates are never mutated.
type Library interface {
	// SuggestFromName returns templates ranked by name relevance,
	// best match first. Empty when nothing is relevant.
	SuggestFromName(name string) []model.Template

	// Get returns the template with the given id, nil when absent.
	Get(id string) *model.Template
}
