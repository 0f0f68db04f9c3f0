// File: internal/stack/runs.go
// Brief: Run history types and table output.

package stack

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// RunRecord is one lifecycle batch (up/down/restart/autostart) with its
// per-stack outcomes.
type RunRecord struct {
	ID         string
	Command    string
	StartedAt  time.Time
	FinishedAt time.Time
	Results    []StackResult
}

// StackResult is the outcome of one stack within a batch.
type StackResult struct {
	Stack string
	OK    bool
	Err   string
}

// RunSummary is the compact view listed by `stackctl runs`.
type RunSummary struct {
	ID        string
	Command   string
	StartedAt string
	Total     int
	Succeeded int
	Failed    int
}

// NewRunID builds a sortable run identifier from the start time.
func NewRunID(t time.Time) string {
	return t.UTC().Format("20060102-150405.000000000")
}

// PrintRuns writes the run history table.
func PrintRuns(w io.Writer, runs []RunSummary) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "RUN\tCOMMAND\tSTARTED\tTOTALS")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\tplanned=%d succeeded=%d failed=%d\n",
			r.ID, r.Command, r.StartedAt, r.Total, r.Succeeded, r.Failed)
	}
}
