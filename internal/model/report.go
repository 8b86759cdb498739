package model

import "time"

// ReportID uniquely identifies a submitted exam report.
type ReportID string

// ExamReport is the full record of one completed exam session,
// including the violation and photo payloads captured by the client.
// Reports are immutable once stored.
type ExamReport struct {
	ID             ReportID
	StudentID      string
	Code           CodeValue
	SubmittedAt    time.Time
	SuspicionScore float64
	// Violations and Photos are opaque payloads passed through
	// verbatim; their keys are not schema-constrained here.
	Violations   []map[string]any
	Photos       []map[string]any
	ClosedReason string
	// CompletionTimeSeconds = declared duration - time remaining at
	// submission. The inputs are not validated, so this may be
	// negative or exceed the duration.
	CompletionTimeSeconds int
}

// ReportSubmission is the caller-supplied input for creating a report.
type ReportSubmission struct {
	StudentID      string
	Code           string
	SuspicionScore float64
	Violations     []map[string]any
	Photos         []map[string]any
	ClosedReason   string
	TimeRemaining  int
	Duration       int
}

// ReportSummary is a lightweight projection of a report for list views.
// Photos and full violation payloads are deliberately excluded to keep
// the list response small.
type ReportSummary struct {
	ID             ReportID
	StudentID      string
	Code           CodeValue
	SubmittedAt    time.Time
	SuspicionScore float64
	ViolationCount int
	ClosedReason   string
}

// Summary projects a report into its list view.
func (r *ExamReport) Summary() ReportSummary {
	return ReportSummary{
		ID:             r.ID,
		StudentID:      r.StudentID,
		Code:           r.Code,
		SubmittedAt:    r.SubmittedAt,
		SuspicionScore: r.SuspicionScore,
		ViolationCount: len(r.Violations),
		ClosedReason:   r.ClosedReason,
	}
}
