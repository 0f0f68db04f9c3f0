// File: internal/stack/metadata.go
// Brief: Sidecar metadata load/save with allow-list decoding.

package stack

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// knownMetaKeys is the allow-list of sidecar keys. "name" is recognized but
// never applied: the derived name is the only identity.
var knownMetaKeys = map[string]struct{}{
	"name":                {},
	"description":         {},
	"category":            {},
	"subcategory":         {},
	"tags":                {},
	"auto_start":          {},
	"priority":            {},
	"depends_on":          {},
	"expected_containers": {},
	"critical":            {},
	"owner":               {},
	"documentation":       {},
	"health_check_url":    {},
}

// metaRecord is the on-disk projection. Decoding starts from the stack's
// current values so absent keys keep their defaults.
type metaRecord struct {
	Metadata `yaml:",inline"`
	Name     string `yaml:"name,omitempty"`
}

// MetaPath returns the sidecar path for the stack's directory.
func (s *Stack) MetaPath() string {
	return filepath.Join(s.Dir, MetaFileName)
}

// LoadMetadata reads the sidecar if present. A missing sidecar is not an
// error: the stack keeps its defaults. A malformed document is.
func (s *Stack) LoadMetadata(log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	raw, err := os.ReadFile(s.MetaPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", s.MetaPath(), err)
	}
	s.HasSidecar = true

	var loose map[string]any
	if err := yaml.Unmarshal(raw, &loose); err != nil {
		return fmt.Errorf("parse %s: %w", s.MetaPath(), err)
	}
	for key := range loose {
		if _, ok := knownMetaKeys[key]; !ok {
			log.Warn("ignoring unknown metadata key",
				zap.String("stack", s.Name), zap.String("key", key))
		}
	}

	rec := metaRecord{Metadata: s.Metadata}
	if err := yaml.Unmarshal(raw, &rec); err != nil {
		return fmt.Errorf("parse %s: %w", s.MetaPath(), err)
	}
	s.Metadata = rec.Metadata
	s.Tags = dedupeTags(s.Tags)
	s.PersistedName = rec.Name
	if rec.Name != "" && rec.Name != s.Name {
		log.Warn("sidecar name differs from derived name; ignoring it",
			zap.String("stack", s.Name), zap.String("sidecar_name", rec.Name))
	}
	return nil
}

// SaveMetadata rewrites the whole sidecar. The always-persisted fields are
// written even at default values; optional fields only when set; the name
// never. The write goes through a temp file and rename so a crash mid-write
// cannot clobber the stack's other files.
func (s *Stack) SaveMetadata() error {
	out, err := yaml.Marshal(&s.Metadata)
	if err != nil {
		return fmt.Errorf("encode metadata for %s: %w", s.Name, err)
	}
	tmp, err := os.CreateTemp(s.Dir, MetaFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", s.MetaPath(), err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", s.MetaPath(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", s.MetaPath(), err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", s.MetaPath(), err)
	}
	if err := os.Rename(tmpPath, s.MetaPath()); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", s.MetaPath(), err)
	}
	s.HasSidecar = true
	return nil
}

func dedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return tags
	}
	seen := make(map[string]struct{}, len(tags))
	out := tags[:0]
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
