// File: internal/stack/validate.go
// Brief: Non-fatal validation pass over the registry.

package stack

import (
	"fmt"
	"os"
)

// Issue severities. Issues never block discovery or lifecycle commands;
// they only surface through the validate command.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue is one validation finding attached to a stack.
type Issue struct {
	Stack    string
	Severity string
	Message  string
}

// Validate collects issues across every registered stack: a manifest that
// vanished since discovery, a dangling depends_on name, a missing sidecar,
// or a persisted name disagreeing with the derived one.
func (r *Registry) Validate() []Issue {
	var issues []Issue
	for _, s := range sortedByName(r.stacks) {
		if _, err := os.Stat(s.ManifestPath); err != nil {
			issues = append(issues, Issue{
				Stack:    s.Name,
				Severity: SeverityError,
				Message:  "compose manifest not found",
			})
		}
		for _, dep := range s.DependsOn {
			if r.ByName(dep) == nil {
				issues = append(issues, Issue{
					Stack:    s.Name,
					Severity: SeverityError,
					Message:  fmt.Sprintf("dependency %q not found", dep),
				})
			}
		}
		if !s.HasSidecar {
			issues = append(issues, Issue{
				Stack:    s.Name,
				Severity: SeverityWarning,
				Message:  "no " + MetaFileName + " file",
			})
		}
		if s.PersistedName != "" && s.PersistedName != s.Name {
			issues = append(issues, Issue{
				Stack:    s.Name,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("sidecar name %q disagrees with derived name", s.PersistedName),
			})
		}
	}
	return issues
}
