package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case LoginResult:
		o.printLoginResult(v)
	case GeneratedCode:
		o.printGeneratedCode(v)
	case CodeList:
		o.printCodeList(v)
	case ReportList:
		o.printReportList(v)
	case ReportDetail:
		o.printReportDetail(v)
	case StatusResult:
		o.printStatusResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// LoginResult response type (matches API)
type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// GeneratedCode response type
type GeneratedCode struct {
	Code string `json:"code"`
}

// CodeInfo response type
type CodeInfo struct {
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UsedBy    *string   `json:"used_by"`
}

// CodeList response type
type CodeList struct {
	Codes map[string]CodeInfo `json:"codes"`
}

// ReportSummary response type
type ReportSummary struct {
	ReportID       string    `json:"report_id"`
	StudentID      string    `json:"student_id"`
	Code           string    `json:"code"`
	SubmittedAt    time.Time `json:"submitted_at"`
	SuspicionScore float64   `json:"suspicion_score"`
	ViolationCount int       `json:"violation_count"`
	ClosedReason   string    `json:"closed_reason,omitempty"`
}

// ReportList response type
type ReportList struct {
	Reports []ReportSummary `json:"reports"`
}

// ReportDetail response type
type ReportDetail struct {
	Report struct {
		ReportID              string           `json:"report_id"`
		StudentID             string           `json:"student_id"`
		Code                  string           `json:"code"`
		SubmittedAt           time.Time        `json:"submitted_at"`
		SuspicionScore        float64          `json:"suspicion_score"`
		Violations            []map[string]any `json:"violations"`
		Photos                []map[string]any `json:"photos"`
		ClosedReason          string           `json:"closed_reason,omitempty"`
		CompletionTimeSeconds int              `json:"completion_time_seconds"`
	} `json:"report"`
}

// StatusResult response type
type StatusResult struct {
	Status string `json:"status"`
}

func (o *Output) printLoginResult(l LoginResult) {
	fmt.Printf("Logged in as: %s\n", l.Role)
	fmt.Printf("Token: %s\n", l.Token)
}

func (o *Output) printGeneratedCode(g GeneratedCode) {
	fmt.Printf("Code: %s\n", g.Code)
}

func (o *Output) printCodeList(c CodeList) {
	fmt.Printf("Codes (%d):\n", len(c.Codes))

	values := make([]string, 0, len(c.Codes))
	for v := range c.Codes {
		values = append(values, v)
	}
	sort.Strings(values)

	for _, v := range values {
		info := c.Codes[v]
		fmt.Printf("  - %s [%s] created %s\n", v, info.Status, info.CreatedAt.Format(time.RFC3339))
	}
}

func (o *Output) printReportList(r ReportList) {
	fmt.Printf("Reports (%d):\n", len(r.Reports))
	for _, s := range r.Reports {
		fmt.Printf("  - %s: student %s, code %s, score %.1f, %d violation(s)\n",
			s.ReportID, s.StudentID, s.Code, s.SuspicionScore, s.ViolationCount)
	}
}

func (o *Output) printReportDetail(d ReportDetail) {
	r := d.Report
	fmt.Printf("Report: %s\n", r.ReportID)
	fmt.Printf("Student: %s\n", r.StudentID)
	fmt.Printf("Code: %s\n", r.Code)
	fmt.Printf("Submitted: %s\n", r.SubmittedAt.Format(time.RFC3339))
	fmt.Printf("Suspicion Score: %.1f\n", r.SuspicionScore)
	fmt.Printf("Completion Time: %ds\n", r.CompletionTimeSeconds)
	if r.ClosedReason != "" {
		fmt.Printf("Closed Reason: %s\n", r.ClosedReason)
	}
	fmt.Printf("Violations (%d):\n", len(r.Violations))
	for _, v := range r.Violations {
		fmt.Printf("  - %v\n", v)
	}
	fmt.Printf("Photos: %d captured\n", len(r.Photos))
}

func (o *Output) printStatusResult(s StatusResult) {
	fmt.Printf("Status: %s\n", s.Status)
}
