// File: internal/compose/manifest.go
// Brief: Compose manifest file naming.

// Package compose wraps the external docker compose collaborator: manifest
// naming, project introspection, and lifecycle command execution.
package compose

import (
	"os"
	"path/filepath"
)

// manifestNames are the file names whose presence marks a directory as a
// stack, in lookup precedence order. The compose tooling treats them as
// equivalent.
var manifestNames = []string{
	"docker-compose.yml",
	"docker-compose.yaml",
	"compose.yaml",
	"compose.yml",
}

// IsManifestName reports whether base is a recognized compose file name.
func IsManifestName(base string) bool {
	for _, n := range manifestNames {
		if base == n {
			return true
		}
	}
	return false
}

// FindManifest returns the first compose file present in dir.
func FindManifest(dir string) (string, bool) {
	for _, n := range manifestNames {
		path := filepath.Join(dir, n)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}
