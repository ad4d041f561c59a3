package template_test

import (
	"testing"

	"task-intelligence/internal/model"
	"task-intelligence/internal/template"
)

func TestSuggestFromName(t *testing.T) {
	lib := template.New(nil)

	t.Run("Report Name Matches Report Template First", func(t *testing.T) {
		got := lib.SuggestFromName("Viết báo cáo quý")
		if len(got) == 0 {
			t.Fatal("expected at least one template")
		}
		if got[0].ID != "tpl-report" {
			t.Errorf("best match = %s, want tpl-report", got[0].ID)
		}
	})

	t.Run("Irrelevant Name Matches Nothing", func(t *testing.T) {
		if got := lib.SuggestFromName("đi khám răng"); len(got) != 0 {
			t.Errorf("expected no matches, got %d", len(got))
		}
	})

	t.Run("Empty Name", func(t *testing.T) {
		if got := lib.SuggestFromName(""); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}

func TestGet(t *testing.T) {
	lib := template.New([]model.Template{{ID: "custom", Name: "Custom", Steps: []string{"one"}}})

	if tpl := lib.Get("custom"); tpl == nil || tpl.Name != "Custom" {
		t.Errorf("Get(custom) = %+v", tpl)
	}
	if tpl := lib.Get("missing"); tpl != nil {
		t.Errorf("Get(missing) = %+v, want nil", tpl)
	}

	// Returned template is a copy; mutating it must not affect the library.
	tpl := lib.Get("custom")
	tpl.Name = "changed"
	if lib.Get("custom").Name != "Custom" {
		t.Error("library template mutated through Get result")
	}
}
