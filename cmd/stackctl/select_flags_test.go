package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/example/stackctl/internal/stack"
)

func TestSelectionFlags_Request(t *testing.T) {
	f := selectionFlags{all: true, category: "web", tag: "infra"}

	q := f.request([]string{"blog"})
	if q.Name != "blog" || !q.All || q.Category != "web" || q.Tag != "infra" {
		t.Fatalf("request=%+v", q)
	}

	q = f.request(nil)
	if q.Name != "" {
		t.Fatalf("request=%+v, no positional name was given", q)
	}
}

func TestLogsSelection_DefaultsToAllStacks(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a", "b"} {
		dir := filepath.Join(root, name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		manifest := filepath.Join(dir, "docker-compose.yml")
		if err := os.WriteFile(manifest, []byte("services: {}\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	reg, err := stack.Discover(root, nil)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}

	targets, err := logsSelection(reg, nil, selectionFlags{})
	if err != nil {
		t.Fatalf("selection: %v", err)
	}
	if len(targets) != 2 {
		t.Fatalf("targets=%d want 2", len(targets))
	}

	targets, err = logsSelection(reg, []string{"b", "a"}, selectionFlags{})
	if err != nil {
		t.Fatalf("selection: %v", err)
	}
	if len(targets) != 2 || targets[0].Name != "b" || targets[1].Name != "a" {
		t.Fatalf("positional order not preserved: %v", targetNames(targets))
	}

	if _, err := logsSelection(reg, []string{"ghost"}, selectionFlags{}); err == nil {
		t.Fatalf("expected an error for an unknown name")
	}
}

func targetNames(stacks []*stack.Stack) []string {
	out := make([]string, 0, len(stacks))
	for _, s := range stacks {
		out = append(out, s.Name)
	}
	return out
}
