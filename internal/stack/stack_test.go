package stack

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func writeFile(t *testing.T, path string, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func writeManifest(t *testing.T, dir string) {
	t.Helper()
	writeFile(t, filepath.Join(dir, "docker-compose.yml"), "services:\n  web:\n    image: nginx\n")
}

func discover(t *testing.T, root string) *Registry {
	t.Helper()
	reg, err := Discover(root, nil)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	return reg
}

func TestDiscover_DerivesNamesAndSkipsHidden(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, filepath.Join(root, "web", "blog"))
	writeManifest(t, filepath.Join(root, "db"))
	writeManifest(t, filepath.Join(root, ".archive", "old"))
	writeManifest(t, filepath.Join(root, "infra", ".hidden"))

	reg := discover(t, root)
	if reg.Len() != 2 {
		t.Fatalf("len=%d want 2", reg.Len())
	}
	if s := reg.ByName("web-blog"); s == nil {
		t.Fatalf("web-blog not discovered")
	} else if s.Category != DefaultCategory || s.Priority != DefaultPriority {
		t.Fatalf("defaults not applied: %+v", s.Metadata)
	}
	if reg.ByName("db") == nil {
		t.Fatalf("db not discovered")
	}
}

func TestDiscover_Idempotent(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, filepath.Join(root, "a"))
	writeManifest(t, filepath.Join(root, "b", "c"))
	writeFile(t, filepath.Join(root, "a", MetaFileName), "category: web\npriority: 2\ntags: [x]\n")

	first := discover(t, root)
	second := discover(t, root)
	if first.Len() != second.Len() {
		t.Fatalf("len %d != %d", first.Len(), second.Len())
	}
	for _, s := range first.All() {
		other := second.ByName(s.Name)
		if other == nil {
			t.Fatalf("%s missing on rediscovery", s.Name)
		}
		if !reflect.DeepEqual(s.Metadata, other.Metadata) {
			t.Fatalf("%s metadata drifted: %+v vs %+v", s.Name, s.Metadata, other.Metadata)
		}
	}
}

func TestDiscover_NameCollisionLastWins(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, filepath.Join(root, "a", "b"))
	writeManifest(t, filepath.Join(root, "a-b"))

	reg := discover(t, root)
	if reg.Len() != 1 {
		t.Fatalf("len=%d want 1", reg.Len())
	}
	s := reg.ByName("a-b")
	if s == nil {
		t.Fatalf("a-b missing")
	}
	// Lexical walk order visits a/b before a-b, so a-b overwrites.
	if s.Dir != filepath.Join(root, "a-b") {
		t.Fatalf("dir=%s, expected the later discovery to win", s.Dir)
	}
}

func TestDiscover_OneManifestPerDirectory(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "app")
	writeFile(t, filepath.Join(dir, "compose.yaml"), "services: {}\n")
	writeFile(t, filepath.Join(dir, "docker-compose.yml"), "services: {}\n")

	reg := discover(t, root)
	if reg.Len() != 1 {
		t.Fatalf("len=%d want 1", reg.Len())
	}
}

func TestMetadata_RoundTrip(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, filepath.Join(root, "app"))

	reg := discover(t, root)
	s := reg.ByName("app")
	s.Description = "demo app"
	s.Category = "web"
	s.Subcategory = "frontend"
	s.Tags = []string{"b", "a"}
	s.AutoStart = true
	s.Priority = 2
	s.DependsOn = []string{"db"}
	s.ExpectedContainers = 3
	s.Critical = true
	s.Owner = "platform"
	s.Documentation = "https://wiki/app"
	s.HealthCheckURL = "http://localhost/healthz"
	if err := s.SaveMetadata(); err != nil {
		t.Fatalf("save: %v", err)
	}

	fresh := discover(t, root).ByName("app")
	if fresh == nil {
		t.Fatalf("app missing after rediscovery")
	}
	if !reflect.DeepEqual(fresh.Metadata, s.Metadata) {
		t.Fatalf("round trip lost fields:\n got %+v\nwant %+v", fresh.Metadata, s.Metadata)
	}
	if fresh.Name != "app" {
		t.Fatalf("name=%q", fresh.Name)
	}
}

func TestMetadata_MissingSidecarKeepsDefaults(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, filepath.Join(root, "plain"))

	s := discover(t, root).ByName("plain")
	if s.HasSidecar {
		t.Fatalf("HasSidecar=true without a sidecar")
	}
	if s.Category != DefaultCategory || s.Priority != DefaultPriority || s.AutoStart {
		t.Fatalf("defaults not kept: %+v", s.Metadata)
	}
}

func TestMetadata_NameKeyIgnoredAndUnknownKeysDropped(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "svc")
	writeManifest(t, dir)
	writeFile(t, filepath.Join(dir, MetaFileName),
		"name: stale-name\ncategory: web\nfuture_field: whatever\n")

	s := discover(t, root).ByName("svc")
	if s == nil {
		t.Fatalf("svc missing")
	}
	if s.Name != "svc" {
		t.Fatalf("persisted name applied: %q", s.Name)
	}
	if s.PersistedName != "stale-name" {
		t.Fatalf("PersistedName=%q", s.PersistedName)
	}
	if s.Category != "web" {
		t.Fatalf("category=%q", s.Category)
	}
}

func TestMetadata_SaveNeverWritesName(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "svc")
	writeManifest(t, dir)

	s := discover(t, root).ByName("svc")
	if err := s.SaveMetadata(); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(s.MetaPath())
	if err != nil {
		t.Fatalf("read sidecar: %v", err)
	}
	if contains := string(raw); len(contains) == 0 || containsLine(contains, "name:") {
		t.Fatalf("sidecar should not carry a name key:\n%s", contains)
	}
	// Always-persisted fields appear even at defaults.
	for _, key := range []string{"description:", "category:", "tags:", "auto_start:", "priority:"} {
		if !containsLine(string(raw), key) {
			t.Fatalf("missing %s in:\n%s", key, raw)
		}
	}
}

func containsLine(doc, prefix string) bool {
	for _, line := range splitLines(doc) {
		if len(line) >= len(prefix) && line[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

func splitLines(doc string) []string {
	var out []string
	start := 0
	for i := 0; i < len(doc); i++ {
		if doc[i] == '\n' {
			out = append(out, doc[start:i])
			start = i + 1
		}
	}
	if start < len(doc) {
		out = append(out, doc[start:])
	}
	return out
}

func TestMetadata_DuplicateTagsDedupedOnLoad(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "svc")
	writeManifest(t, dir)
	writeFile(t, filepath.Join(dir, MetaFileName), "tags: [a, b, a]\n")

	s := discover(t, root).ByName("svc")
	want := []string{"a", "b"}
	if !reflect.DeepEqual(s.Tags, want) {
		t.Fatalf("tags=%v want %v", s.Tags, want)
	}
}

func TestValidate_CollectsIssues(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, filepath.Join(root, "good"))
	writeFile(t, filepath.Join(root, "good", MetaFileName), "depends_on: [ghost]\n")
	writeManifest(t, filepath.Join(root, "bare"))
	writeManifest(t, filepath.Join(root, "renamed"))
	writeFile(t, filepath.Join(root, "renamed", MetaFileName), "name: old-name\ncategory: web\n")

	reg := discover(t, root)
	// Simulate a manifest vanishing after discovery.
	if err := os.Remove(reg.ByName("bare").ManifestPath); err != nil {
		t.Fatalf("remove manifest: %v", err)
	}

	issues := reg.Validate()
	var got []string
	for _, issue := range issues {
		got = append(got, issue.Stack+"/"+issue.Severity)
	}
	sort.Strings(got)
	want := []string{
		"bare/error",          // manifest gone
		"bare/warning",        // no sidecar
		"good/error",          // dangling dependency
		"renamed/warning",     // stale persisted name
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("issues=%v want %v", got, want)
	}
}
