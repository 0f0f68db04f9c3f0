package compose

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFindManifest_PrecedenceOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"compose.yml", "docker-compose.yaml"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("services: {}\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	path, ok := FindManifest(dir)
	if !ok {
		t.Fatalf("manifest not found")
	}
	if filepath.Base(path) != "docker-compose.yaml" {
		t.Fatalf("path=%s, docker-compose.yaml outranks compose.yml", path)
	}
}

func TestFindManifest_Missing(t *testing.T) {
	if _, ok := FindManifest(t.TempDir()); ok {
		t.Fatalf("found a manifest in an empty directory")
	}
}

func TestIsManifestName(t *testing.T) {
	for _, name := range []string{"docker-compose.yml", "docker-compose.yaml", "compose.yaml", "compose.yml"} {
		if !IsManifestName(name) {
			t.Fatalf("%s not recognized", name)
		}
	}
	for _, name := range []string{"compose.json", "Docker-Compose.yml", ".stack-meta.yaml"} {
		if IsManifestName(name) {
			t.Fatalf("%s wrongly recognized", name)
		}
	}
}

func TestServiceNames(t *testing.T) {
	dir := t.TempDir()
	manifest := `services:
  web:
    image: nginx:alpine
    depends_on:
      - db
  db:
    image: postgres:16
`
	if err := os.WriteFile(filepath.Join(dir, "docker-compose.yml"), []byte(manifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	got, err := ServiceNames(dir)
	if err != nil {
		t.Fatalf("service names: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"db", "web"}) {
		t.Fatalf("services=%v", got)
	}
}

func TestServiceNames_NoManifest(t *testing.T) {
	if _, err := ServiceNames(t.TempDir()); err == nil {
		t.Fatalf("expected an error for a bare directory")
	}
}

func TestProjectNameFor(t *testing.T) {
	cases := map[string]string{
		"/srv/stacks/Web.App":   "web-app",
		"/srv/stacks/db_01":     "db_01",
		"/srv/stacks/my stack!": "my-stack-",
	}
	for dir, want := range cases {
		if got := projectNameFor(dir); got != want {
			t.Fatalf("projectNameFor(%q)=%q want %q", dir, got, want)
		}
	}
}
