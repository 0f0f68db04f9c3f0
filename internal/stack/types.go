// File: internal/stack/types.go
// Brief: Stack entity and sidecar metadata fields.

package stack

// MetaFileName is the per-stack sidecar document holding mutable metadata.
// The leading dot keeps discovery from ever registering it as a stack.
const MetaFileName = ".stack-meta.yaml"

const (
	DefaultCategory = "uncategorized"
	DefaultPriority = 5
)

// Metadata holds the mutable, user-authored fields of a stack. Field order
// matters: it is the order the sidecar is written in. The first five fields
// are always persisted so the file documents itself; the rest only when set.
type Metadata struct {
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
	AutoStart   bool     `yaml:"auto_start"`
	Priority    int      `yaml:"priority"`

	Subcategory        string   `yaml:"subcategory,omitempty"`
	DependsOn          []string `yaml:"depends_on,omitempty"`
	ExpectedContainers int      `yaml:"expected_containers,omitempty"`
	Critical           bool     `yaml:"critical,omitempty"`
	Owner              string   `yaml:"owner,omitempty"`
	Documentation      string   `yaml:"documentation,omitempty"`
	HealthCheckURL     string   `yaml:"health_check_url,omitempty"`
}

// Stack is one discovered compose project directory plus its metadata.
// Name is always derived from Dir relative to the registry root and is
// never read from or written to the sidecar.
type Stack struct {
	Name string
	Dir  string

	// ManifestPath is the compose file whose presence registered this stack.
	ManifestPath string

	Metadata

	// HasSidecar records whether a sidecar existed at discovery time.
	HasSidecar bool
	// PersistedName is a stale "name" key found in the sidecar, if any.
	// It is never applied; validation reports it when it disagrees with Name.
	PersistedName string
}

func newStack(name, dir, manifest string) *Stack {
	return &Stack{
		Name:         name,
		Dir:          dir,
		ManifestPath: manifest,
		Metadata: Metadata{
			Category: DefaultCategory,
			Priority: DefaultPriority,
		},
	}
}

// HasTag reports whether the stack carries the tag (case-sensitive).
func (s *Stack) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTags appends tags not already present, preserving insertion order,
// and returns the ones actually added.
func (s *Stack) AddTags(tags []string) []string {
	var added []string
	for _, tag := range tags {
		if s.HasTag(tag) {
			continue
		}
		s.Tags = append(s.Tags, tag)
		added = append(added, tag)
	}
	return added
}

// RemoveTags drops the given tags and returns the ones actually removed.
func (s *Stack) RemoveTags(tags []string) []string {
	var removed []string
	for _, tag := range tags {
		kept := s.Tags[:0]
		found := false
		for _, t := range s.Tags {
			if t == tag {
				found = true
				continue
			}
			kept = append(kept, t)
		}
		s.Tags = kept
		if found {
			removed = append(removed, tag)
		}
	}
	return removed
}

// CategoryDisplay renders "category" or "category/subcategory".
func (s *Stack) CategoryDisplay() string {
	if s.Subcategory != "" {
		return s.Category + "/" + s.Subcategory
	}
	return s.Category
}
