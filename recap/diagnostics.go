// Package recap computes the weekly recap metrics for a fantasy league from
// data that has already been fetched from the league's platform. Nothing in
// this package does I/O, and the same input always produces the same report.
package recap

import "fmt"

type DiagnosticKind string

const (
	// MalformedRecord is a record that was missing data needed by a metric and
	// was skipped.
	MalformedRecord DiagnosticKind = "malformed_record"
)

// Diagnostic describes an input record that was skipped while computing a
// report. Diagnostics never stop a report from being generated.
type Diagnostic struct {
	Kind      DiagnosticKind `json:"kind"`
	Metric    string         `json:"metric"`
	Message   string         `json:"message"`
	RosterID  int            `json:"roster_id,omitempty"`
	MatchupID int            `json:"matchup_id,omitempty"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s (%s): %s", d.Kind, d.Metric, d.Message)
}

func malformed(metric string, rosterID, matchupID int, format string, args ...any) Diagnostic {
	return Diagnostic{
		Kind:      MalformedRecord,
		Metric:    metric,
		Message:   fmt.Sprintf(format, args...),
		RosterID:  rosterID,
		MatchupID: matchupID,
	}
}
