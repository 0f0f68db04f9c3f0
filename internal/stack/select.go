// File: internal/stack/select.go
// Brief: Selection requests and dependency expansion.

package stack

import "errors"

// Request describes one selection of stacks. Exactly one mode is honored
// per resolve; when several are supplied the most specific wins:
// explicit name > all > category > tag.
type Request struct {
	Name     string
	All      bool
	Category string
	Tag      string

	// WithDeps expands the dependency closure of an explicit name before
	// the target itself. It has no effect on the other modes.
	WithDeps bool
}

// ErrNoSelection is returned when a request carries no mode at all.
var ErrNoSelection = errors.New("no stack selected (pass a name, --all, --category, or --tag)")

// Resolve turns the request into a concrete stack set. An unknown explicit
// name is a *NotFoundError; an empty category or tag match is not an error.
func (q Request) Resolve(r *Registry) ([]*Stack, error) {
	switch {
	case q.Name != "":
		s := r.ByName(q.Name)
		if s == nil {
			return nil, &NotFoundError{Name: q.Name}
		}
		if !q.WithDeps {
			return []*Stack{s}, nil
		}
		deps, err := ExpandDependencies(s, r)
		if err != nil {
			return nil, err
		}
		return append(deps, s), nil
	case q.All:
		return r.All(), nil
	case q.Category != "":
		return r.ByCategory(q.Category), nil
	case q.Tag != "":
		return r.ByTag(q.Tag), nil
	default:
		return nil, ErrNoSelection
	}
}

// ExpandDependencies returns the depends_on closure of s, depth-first in
// post-order: a dependency's own dependencies come before it, and s itself
// is not included. Names that resolve to no known stack are skipped;
// flagging them is validation's job. A cycle in the graph yields a
// *CyclicDependencyError naming the cycle.
func ExpandDependencies(s *Stack, r *Registry) ([]*Stack, error) {
	done := map[string]struct{}{}
	onPath := map[string]bool{}
	var path []string
	var out []*Stack

	var visit func(*Stack) error
	visit = func(cur *Stack) error {
		onPath[cur.Name] = true
		path = append(path, cur.Name)
		for _, depName := range cur.DependsOn {
			dep := r.ByName(depName)
			if dep == nil {
				continue
			}
			if onPath[depName] {
				return &CyclicDependencyError{Cycle: append(cyclePath(path, depName), depName)}
			}
			if _, ok := done[depName]; ok {
				continue
			}
			if err := visit(dep); err != nil {
				return err
			}
			done[depName] = struct{}{}
			out = append(out, dep)
		}
		onPath[cur.Name] = false
		path = path[:len(path)-1]
		return nil
	}
	if err := visit(s); err != nil {
		return nil, err
	}
	return out, nil
}

func cyclePath(path []string, from string) []string {
	for i, name := range path {
		if name == from {
			return append([]string(nil), path[i:]...)
		}
	}
	return append([]string(nil), path...)
}
