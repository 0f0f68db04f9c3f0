// File: internal/stack/errors.go
// Brief: Typed errors surfaced by selection and expansion.

package stack

import (
	"fmt"
	"strings"
)

// NotFoundError reports an explicit stack name that is not in the registry.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("stack %q not found", e.Name)
}

// CyclicDependencyError reports a depends_on cycle hit during expansion.
type CyclicDependencyError struct {
	Cycle []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(e.Cycle, " -> "))
}
