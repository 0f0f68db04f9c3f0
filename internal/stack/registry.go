// File: internal/stack/registry.go
// Brief: Registry queries and sidecar-persisting mutations.

package stack

import (
	"sort"
	"strings"
)

// Len returns the number of registered stacks.
func (r *Registry) Len() int {
	return len(r.stacks)
}

// All returns every stack. Order is unspecified; ordering is the caller's
// job (see order.go).
func (r *Registry) All() []*Stack {
	out := make([]*Stack, 0, len(r.stacks))
	for _, s := range r.stacks {
		out = append(out, s)
	}
	return out
}

// ByName returns the stack with the exact derived name, or nil.
func (r *Registry) ByName(name string) *Stack {
	return r.stacks[name]
}

// ByCategory returns stacks whose category matches exactly.
// Subcategory is ignored.
func (r *Registry) ByCategory(category string) []*Stack {
	var out []*Stack
	for _, s := range r.stacks {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// ByTag returns stacks carrying the tag.
func (r *Registry) ByTag(tag string) []*Stack {
	var out []*Stack
	for _, s := range r.stacks {
		if s.HasTag(tag) {
			out = append(out, s)
		}
	}
	return out
}

// Search returns stacks whose name, description, or any tag contains term,
// case-insensitively. No ranking.
func (r *Registry) Search(term string) []*Stack {
	term = strings.ToLower(term)
	var out []*Stack
	for _, s := range r.stacks {
		if strings.Contains(strings.ToLower(s.Name), term) ||
			strings.Contains(strings.ToLower(s.Description), term) ||
			anyTagContains(s.Tags, term) {
			out = append(out, s)
		}
	}
	return out
}

func anyTagContains(tags []string, term string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}

// AutostartSet returns stacks flagged auto_start, in start order.
func (r *Registry) AutostartSet() []*Stack {
	var out []*Stack
	for _, s := range r.stacks {
		if s.AutoStart {
			out = append(out, s)
		}
	}
	SortForStart(out)
	return out
}

// AllTags returns the union of every stack's tags, sorted.
func (r *Registry) AllTags() []string {
	seen := map[string]struct{}{}
	for _, s := range r.stacks {
		for _, t := range s.Tags {
			seen[t] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// CategoryPair is one unique (category, subcategory) combination.
type CategoryPair struct {
	Category    string
	Subcategory string
}

// Display renders the pair the way stacks do.
func (p CategoryPair) Display() string {
	if p.Subcategory != "" {
		return p.Category + "/" + p.Subcategory
	}
	return p.Category
}

// AllCategories returns unique (category, subcategory) pairs, sorted by
// category then subcategory.
func (r *Registry) AllCategories() []CategoryPair {
	seen := map[CategoryPair]struct{}{}
	for _, s := range r.stacks {
		seen[CategoryPair{s.Category, s.Subcategory}] = struct{}{}
	}
	out := make([]CategoryPair, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Subcategory < out[j].Subcategory
	})
	return out
}

// RenameTag replaces old with new on every stack carrying old, persisting
// each touched sidecar. A stack already tagged with new ends up with new
// exactly once. Returns the number of stacks touched.
func (r *Registry) RenameTag(old, new string) (int, error) {
	count := 0
	for _, s := range sortedByName(r.stacks) {
		if !s.HasTag(old) {
			continue
		}
		s.RemoveTags([]string{old})
		s.AddTags([]string{new})
		if err := s.SaveMetadata(); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// RenameCategory sets category=new on every stack whose category equals old
// exactly, persisting each. Subcategories are untouched. Returns the number
// of stacks touched.
func (r *Registry) RenameCategory(old, new string) (int, error) {
	count := 0
	for _, s := range sortedByName(r.stacks) {
		if s.Category != old {
			continue
		}
		s.Category = new
		if err := s.SaveMetadata(); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func sortedByName(m map[string]*Stack) []*Stack {
	out := make([]*Stack, 0, len(m))
	for _, s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
