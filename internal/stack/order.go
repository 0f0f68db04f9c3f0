// File: internal/stack/order.go
// Brief: Deterministic start/stop/display sort policies.

package stack

import "sort"

// SortForStart orders stacks for starting: priority ascending (lower starts
// earlier), ties broken by category then name so output is reproducible.
func SortForStart(stacks []*Stack) {
	sort.Slice(stacks, func(i, j int) bool {
		a, b := stacks[i], stacks[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Name < b.Name
	})
}

// SortForStop orders stacks for stopping: priority descending, the reverse
// of the numeric start order. Tie order is not contractually meaningful;
// name descending keeps it reproducible.
func SortForStop(stacks []*Stack) {
	sort.Slice(stacks, func(i, j int) bool {
		a, b := stacks[i], stacks[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.Name > b.Name
	})
}

// SortForDisplay orders stacks for listing and search output; it uses the
// same tuple as the start order.
func SortForDisplay(stacks []*Stack) {
	SortForStart(stacks)
}
