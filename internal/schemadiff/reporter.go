package schemadiff

import (
	"fmt"
	"io"
	"sort"
)

// Reporter formats and writes a Result as human-readable text.
type Reporter struct {
	result *Result
	writer io.Writer
}

// NewReporter creates a Reporter writing to writer.
func NewReporter(result *Result, writer io.Writer) *Reporter {
	return &Reporter{result: result, writer: writer}
}

func (r *Reporter) write(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.writer, format, args...)
}

// Report writes the full summary, change list, and semver recommendation.
func (r *Reporter) Report() error {
	r.printSummary()
	r.printChanges()
	r.printRecommendation()
	return nil
}

func (r *Reporter) printSummary() {
	r.write("Summary:\n")
	r.write("  Total changes: %d\n", len(r.result.Changes))
	r.write("  Breaking:     %d\n", r.result.BreakingCount)
	r.write("  Dangerous:    %d\n", r.result.DangerousCount)
	r.write("  Non-breaking: %d\n\n", r.result.NonBreakingCount)
}

func (r *Reporter) printChanges() {
	changes := append([]*Change(nil), r.result.Changes...)
	sort.Slice(changes, func(i, j int) bool {
		if changes[i].Severity != changes[j].Severity {
			return severityOrder(changes[i].Severity) < severityOrder(changes[j].Severity)
		}
		return changes[i].Path < changes[j].Path
	})

	for _, c := range changes {
		r.write("[%s] %s\n", c.Severity, c.Description)
		if c.OldValue != "" && c.NewValue != "" {
			r.write("   %s -> %s\n", c.OldValue, c.NewValue)
		} else if c.OldValue != "" {
			r.write("   removed: %s\n", c.OldValue)
		} else if c.NewValue != "" {
			r.write("   added: %s\n", c.NewValue)
		}
	}
	r.write("\n")
}

func (r *Reporter) printRecommendation() {
	switch r.result.RecommendedSemverBump() {
	case "major":
		r.write("Recommendation: MAJOR version bump (breaking changes detected)\n")
	case "minor":
		r.write("Recommendation: MINOR version bump\n")
	default:
		r.write("Recommendation: PATCH version bump (or no changes)\n")
	}
}

func severityOrder(s Severity) int {
	switch s {
	case SeverityBreaking:
		return 0
	case SeverityDangerous:
		return 1
	default:
		return 2
	}
}
