// File: internal/stack/discovery.go
// Brief: Filesystem discovery of compose stacks.

package stack

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/example/stackctl/internal/compose"
)

// Registry owns the name -> stack mapping for one root directory. It is
// built once per invocation; the filesystem and sidecar files are the only
// durable state.
type Registry struct {
	Root string

	stacks map[string]*Stack
	log    *zap.Logger
}

// Discover walks root and registers every directory holding a compose
// manifest. Directories with a hidden (dot-prefixed) path segment are
// skipped, so sidecars and state dirs never self-register. Stack names are
// the directory path relative to root with separators replaced by "-";
// when two directories derive the same name the one discovered last wins.
func Discover(root string, log *zap.Logger) (*Registry, error) {
	if log == nil {
		log = zap.NewNop()
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	r := &Registry{
		Root:   absRoot,
		stacks: map[string]*Stack{},
		log:    log,
	}

	seenDirs := map[string]struct{}{}
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path != absRoot && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !compose.IsManifestName(filepath.Base(path)) {
			return nil
		}
		dir := filepath.Dir(path)
		if _, ok := seenDirs[dir]; ok {
			// A directory can carry several equivalent manifest names;
			// the first one found registers the stack.
			return nil
		}
		seenDirs[dir] = struct{}{}

		rel, err := filepath.Rel(absRoot, dir)
		if err != nil {
			return err
		}
		if rel == "." {
			// A manifest at the root itself has no relative path to name it.
			log.Debug("skipping manifest at registry root", zap.String("path", path))
			return nil
		}
		name := deriveName(rel)

		s := newStack(name, dir, path)
		if err := s.LoadMetadata(log); err != nil {
			return err
		}
		if prev, ok := r.stacks[name]; ok {
			log.Warn("stack name collision; later discovery wins",
				zap.String("name", name),
				zap.String("kept", s.Dir),
				zap.String("replaced", prev.Dir))
		}
		r.stacks[name] = s
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover stacks under %s: %w", absRoot, err)
	}
	return r, nil
}

// deriveName maps a root-relative directory path to a stack name. The join
// character cannot appear as a separator in a path segment, so the mapping
// is reversible for well-formed trees.
func deriveName(rel string) string {
	return strings.ReplaceAll(filepath.ToSlash(rel), "/", "-")
}
