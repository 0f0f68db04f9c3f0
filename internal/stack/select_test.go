package stack

import (
	"errors"
	"testing"
)

func testRegistry(stacks ...*Stack) *Registry {
	m := make(map[string]*Stack, len(stacks))
	for _, s := range stacks {
		m[s.Name] = s
	}
	return &Registry{Root: "/test", stacks: m}
}

func testStack(name string, priority int, category string, deps ...string) *Stack {
	s := newStack(name, "/test/"+name, "/test/"+name+"/docker-compose.yml")
	s.Priority = priority
	if category != "" {
		s.Category = category
	}
	s.DependsOn = deps
	return s
}

func names(stacks []*Stack) []string {
	out := make([]string, 0, len(stacks))
	for _, s := range stacks {
		out = append(out, s.Name)
	}
	return out
}

func sameNames(got []*Stack, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, s := range got {
		if s.Name != want[i] {
			return false
		}
	}
	return true
}

func TestResolve_NamePrecedesOtherModes(t *testing.T) {
	reg := testRegistry(
		testStack("a", 1, "web"),
		testStack("b", 5, "web"),
	)
	got, err := Request{Name: "a", All: true, Category: "web", Tag: "x"}.Resolve(reg)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !sameNames(got, "a") {
		t.Fatalf("got %v, name should win over the other modes", names(got))
	}
}

func TestResolve_UnknownName(t *testing.T) {
	reg := testRegistry(testStack("a", 1, ""))
	_, err := Request{Name: "ghost"}.Resolve(reg)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err=%v, want NotFoundError", err)
	}
	if nf.Name != "ghost" {
		t.Fatalf("nf.Name=%q", nf.Name)
	}
}

func TestResolve_EmptyCategoryIsNotAnError(t *testing.T) {
	reg := testRegistry(testStack("a", 1, "web"))
	got, err := Request{Category: "nothing-here"}.Resolve(reg)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", names(got))
	}
}

func TestResolve_NoSelection(t *testing.T) {
	reg := testRegistry(testStack("a", 1, ""))
	_, err := Request{}.Resolve(reg)
	if !errors.Is(err, ErrNoSelection) {
		t.Fatalf("err=%v, want ErrNoSelection", err)
	}
}

func TestResolve_WithDepsOrdersDependenciesFirst(t *testing.T) {
	a := testStack("a", 1, "web")
	b := testStack("b", 5, "web", "a")
	reg := testRegistry(a, b)

	got, err := Request{Name: "b", WithDeps: true}.Resolve(reg)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !sameNames(got, "a", "b") {
		t.Fatalf("got %v, want [a b]", names(got))
	}
}

func TestExpandDependencies_PostOrder(t *testing.T) {
	// c -> b -> a, plus c -> a directly; a must appear once, before b.
	a := testStack("a", 1, "")
	b := testStack("b", 2, "", "a")
	c := testStack("c", 3, "", "b", "a")
	reg := testRegistry(a, b, c)

	got, err := ExpandDependencies(c, reg)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if !sameNames(got, "a", "b") {
		t.Fatalf("got %v, want [a b]", names(got))
	}
}

func TestExpandDependencies_SkipsUnknownNames(t *testing.T) {
	a := testStack("a", 1, "", "ghost", "b")
	b := testStack("b", 2, "")
	reg := testRegistry(a, b)

	got, err := ExpandDependencies(a, reg)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if !sameNames(got, "b") {
		t.Fatalf("got %v, want [b]", names(got))
	}
}

func TestExpandDependencies_CycleIsAnError(t *testing.T) {
	a := testStack("a", 1, "", "b")
	b := testStack("b", 2, "", "a")
	reg := testRegistry(a, b)

	_, err := ExpandDependencies(a, reg)
	var cyc *CyclicDependencyError
	if !errors.As(err, &cyc) {
		t.Fatalf("err=%v, want CyclicDependencyError", err)
	}
	if len(cyc.Cycle) < 3 {
		t.Fatalf("cycle=%v, want the closed path", cyc.Cycle)
	}
	if cyc.Cycle[0] != cyc.Cycle[len(cyc.Cycle)-1] {
		t.Fatalf("cycle=%v, first and last should match", cyc.Cycle)
	}
}

func TestExpandDependencies_SelfCycle(t *testing.T) {
	a := testStack("a", 1, "", "a")
	reg := testRegistry(a)

	_, err := ExpandDependencies(a, reg)
	var cyc *CyclicDependencyError
	if !errors.As(err, &cyc) {
		t.Fatalf("err=%v, want CyclicDependencyError", err)
	}
}
