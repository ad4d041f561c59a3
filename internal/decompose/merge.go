package decompose

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"task-intelligence/internal/model"
	"task-intelligence/pkg/similarity"
)

// SuggestMerge groups tasks with equal category and name-word Jaccard
// similarity above the threshold into merge candidates. Groups are
// transitive: if A~B and B~C they merge together.
func (s *service) SuggestMerge(ctx context.Context, tasks []model.Task) []MergeGroup {
	n := len(tasks)
	if n < 2 {
		return nil
	}

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if tasks[i].Category != tasks[j].Category {
				continue
			}
			if similarity.Jaccard(tasks[i].Name, tasks[j].Name) > mergeThreshold {
				parent[find(i)] = find(j)
			}
		}
	}

	members := make(map[int][]int)
	for i := 0; i < n; i++ {
		root := find(i)
		members[root] = append(members[root], i)
	}

	groups := make([]MergeGroup, 0)
	for i := 0; i < n; i++ {
		idxs, ok := members[find(i)]
		if !ok || len(idxs) < 2 || idxs[0] != i {
			continue
		}

		names := make([]string, 0, len(idxs))
		ids := make([]string, 0, len(idxs))
		for _, idx := range idxs {
			names = append(names, tasks[idx].Name)
			ids = append(ids, tasks[idx].ID)
		}

		groups = append(groups, MergeGroup{
			TaskIDs:    ids,
			MergedName: mergedName(names),
		})
	}

	s.l.Debugf(ctx, "merge suggestion: %d tasks, %d groups", n, len(groups))
	return groups
}

// mergedName builds a name from words appearing in at least
// mergeWordShare of the group's names (title-cased, in the order they
// appear in the first name), falling back to "<first> và N tasks khác".
func mergedName(names []string) string {
	counts := make(map[string]int)
	for _, name := range names {
		inName := make(map[string]bool)
		for _, w := range similarity.Words(name) {
			if !inName[w] {
				inName[w] = true
				counts[w]++
			}
		}
	}

	threshold := int(float64(len(names))*mergeWordShare + 0.999)
	common := make([]string, 0)
	seen := make(map[string]bool)
	for _, w := range similarity.Words(names[0]) {
		if seen[w] || counts[w] < threshold {
			continue
		}
		seen[w] = true
		common = append(common, titleCase(w))
	}

	if len(common) == 0 {
		return fmt.Sprintf("%s và %d tasks khác", names[0], len(names)-1)
	}
	return strings.Join(common, " ")
}

func titleCase(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToTitle(runes[0])
	return string(runes)
}
