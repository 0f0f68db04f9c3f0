// File: internal/compose/project.go
// Brief: Manifest introspection via compose-go.

package compose

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/compose-spec/compose-go/v2/loader"
	composetypes "github.com/compose-spec/compose-go/v2/types"
)

// LoadProject parses the compose manifest in dir into a typed project.
func LoadProject(dir string) (*composetypes.Project, error) {
	path, ok := FindManifest(dir)
	if !ok {
		return nil, fmt.Errorf("no compose manifest in %s", dir)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read compose file %s: %w", path, err)
	}

	env := make(composetypes.Mapping)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[key] = value
	}

	details := composetypes.ConfigDetails{
		WorkingDir: dir,
		ConfigFiles: []composetypes.ConfigFile{
			{Filename: path, Content: data},
		},
		Environment: env,
	}
	project, err := loader.Load(details, func(o *loader.Options) {
		o.SetProjectName(projectNameFor(dir), true)
		o.SkipValidation = true
	})
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return project, nil
}

// ServiceNames lists the services declared by the manifest in dir, in
// declaration-independent sorted order (compose-go sorts them).
func ServiceNames(dir string) ([]string, error) {
	project, err := LoadProject(dir)
	if err != nil {
		return nil, err
	}
	return project.ServiceNames(), nil
}

// projectNameFor derives a compose-legal project name from the directory
// base: lowercase, [a-z0-9_-] only.
func projectNameFor(dir string) string {
	name := strings.ToLower(filepath.Base(dir))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "stack"
	}
	return b.String()
}
