// File: internal/stack/print.go
// Brief: Human-friendly tables for status, show, and validate.

package stack

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/stackctl/internal/compose"
)

var (
	runningIcon = color.New(color.FgGreen).Sprint("●")
	stoppedIcon = color.New(color.FgHiBlack).Sprint("○")
	errorIcon   = color.New(color.FgRed).Sprint("✗")
	warnIcon    = color.New(color.FgYellow).Sprint("⚠")
)

// StatusIcon renders the running/stopped marker for a status.
func StatusIcon(st compose.StackStatus) string {
	if st.State == compose.StateRunning {
		return runningIcon
	}
	return stoppedIcon
}

// StatusRow pairs a stack with its live container status.
type StatusRow struct {
	Stack  *Stack
	Status compose.StackStatus
}

// PrintStatusTable writes the status command's table.
func PrintStatusTable(w io.Writer, rows []StatusRow) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, " \tSTACK\tCATEGORY\tSTATUS\tCONTAINERS")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d/%d\n",
			StatusIcon(row.Status),
			row.Stack.Name,
			row.Stack.Category,
			row.Status.State,
			row.Status.Running,
			row.Status.Total)
	}
}

// PrintShow writes the show command's detail view for one stack.
func PrintShow(w io.Writer, s *Stack, st compose.StackStatus, services []string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "STACK\t%s\n", s.Name)
	fmt.Fprintf(tw, "DESCRIPTION\t%s\n", orNA(s.Description))
	fmt.Fprintf(tw, "CATEGORY\t%s\n", s.CategoryDisplay())
	fmt.Fprintf(tw, "TAGS\t%s\n", joinOr(s.Tags, "none"))
	fmt.Fprintf(tw, "PATH\t%s\n", s.Dir)
	fmt.Fprintf(tw, "STATUS\t%s (%d/%d containers)\n", st.State, st.Running, st.Total)
	fmt.Fprintf(tw, "AUTO-START\t%s\n", yesNo(s.AutoStart))
	if s.AutoStart {
		fmt.Fprintf(tw, "PRIORITY\t%d\n", s.Priority)
	}
	fmt.Fprintf(tw, "CRITICAL\t%s\n", yesNo(s.Critical))
	if len(s.DependsOn) > 0 {
		fmt.Fprintf(tw, "DEPENDENCIES\t%s\n", strings.Join(s.DependsOn, ", "))
	}
	if s.ExpectedContainers > 0 {
		fmt.Fprintf(tw, "EXPECTED\t%d containers\n", s.ExpectedContainers)
	}
	if s.Owner != "" {
		fmt.Fprintf(tw, "OWNER\t%s\n", s.Owner)
	}
	if s.Documentation != "" {
		fmt.Fprintf(tw, "DOCS\t%s\n", s.Documentation)
	}
	if s.HealthCheckURL != "" {
		fmt.Fprintf(tw, "HEALTH\t%s\n", s.HealthCheckURL)
	}
	if len(services) > 0 {
		fmt.Fprintf(tw, "SERVICES\t%s\n", strings.Join(services, ", "))
	}
}

// PrintIssues writes validation findings and a closing count line.
func PrintIssues(w io.Writer, issues []Issue) {
	if len(issues) == 0 {
		fmt.Fprintf(w, "%s All stacks valid\n", color.GreenString("✓"))
		return
	}
	for _, issue := range issues {
		icon := errorIcon
		if issue.Severity == SeverityWarning {
			icon = warnIcon
		}
		fmt.Fprintf(w, "  %s %s: %s\n", icon, issue.Stack, issue.Message)
	}
	plural := "s"
	if len(issues) == 1 {
		plural = ""
	}
	fmt.Fprintf(w, "\n%d issue%s found\n", len(issues), plural)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func joinOr(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	return strings.Join(items, ", ")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
