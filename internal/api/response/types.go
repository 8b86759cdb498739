package response

import (
	"time"

	"github.com/nexproctor/proctor-server/internal/model"
	"github.com/nexproctor/proctor-server/internal/services/auth"
)

// LoginResponse is the success envelope for proctor login
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Role    string `json:"role"`
}

// LoginResponseFromSession builds a LoginResponse from a session
func LoginResponseFromSession(s *auth.Session) LoginResponse {
	return LoginResponse{
		Success: true,
		Token:   s.Token,
		Role:    s.Role,
	}
}

// AccessCode represents an access code in API responses
type AccessCode struct {
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UsedBy    *string   `json:"used_by"`
}

// AccessCodeFromModel converts a model.AccessCode
func AccessCodeFromModel(c *model.AccessCode) AccessCode {
	var usedBy *string
	if c.UsedBy != "" {
		u := c.UsedBy
		usedBy = &u
	}
	return AccessCode{
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UsedBy:    usedBy,
	}
}

// GenerateCodeResponse is the success envelope for code generation
type GenerateCodeResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
}

// ListCodesResponse is the success envelope for listing codes
type ListCodesResponse struct {
	Success bool                  `json:"success"`
	Codes   map[string]AccessCode `json:"codes"`
}

// ListCodesResponseFromModel converts the registry's code map
func ListCodesResponseFromModel(codes map[model.CodeValue]*model.AccessCode) ListCodesResponse {
	out := make(map[string]AccessCode, len(codes))
	for value, c := range codes {
		out[string(value)] = AccessCodeFromModel(c)
	}
	return ListCodesResponse{Success: true, Codes: out}
}

// MessageResponse is a success envelope carrying only a message
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubmitReportResponse is the success envelope for report submission
type SubmitReportResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ReportID string `json:"report_id"`
}

// ReportSummary represents a report summary in API responses
type ReportSummary struct {
	ReportID       string    `json:"report_id"`
	StudentID      string    `json:"student_id"`
	Code           string    `json:"code"`
	SubmittedAt    time.Time `json:"submitted_at"`
	SuspicionScore float64   `json:"suspicion_score"`
	ViolationCount int       `json:"violation_count"`
	ClosedReason   string    `json:"closed_reason,omitempty"`
}

// ReportSummaryFromModel converts a model.ReportSummary
func ReportSummaryFromModel(s model.ReportSummary) ReportSummary {
	return ReportSummary{
		ReportID:       string(s.ID),
		StudentID:      s.StudentID,
		Code:           string(s.Code),
		SubmittedAt:    s.SubmittedAt,
		SuspicionScore: s.SuspicionScore,
		ViolationCount: s.ViolationCount,
		ClosedReason:   s.ClosedReason,
	}
}

// ListReportsResponse is the success envelope for listing report summaries
type ListReportsResponse struct {
	Success bool            `json:"success"`
	Reports []ReportSummary `json:"reports"`
}

// ListReportsResponseFromModel converts summaries preserving order
func ListReportsResponseFromModel(summaries []model.ReportSummary) ListReportsResponse {
	out := make([]ReportSummary, len(summaries))
	for i, s := range summaries {
		out[i] = ReportSummaryFromModel(s)
	}
	return ListReportsResponse{Success: true, Reports: out}
}

// Report represents a full report record in API responses
type Report struct {
	ReportID              string           `json:"report_id"`
	StudentID             string           `json:"student_id"`
	Code                  string           `json:"code"`
	SubmittedAt           time.Time        `json:"submitted_at"`
	SuspicionScore        float64          `json:"suspicion_score"`
	Violations            []map[string]any `json:"violations"`
	Photos                []map[string]any `json:"photos"`
	ClosedReason          string           `json:"closed_reason,omitempty"`
	CompletionTimeSeconds int              `json:"completion_time_seconds"`
}

// ReportFromModel converts a model.ExamReport
func ReportFromModel(r *model.ExamReport) Report {
	return Report{
		ReportID:              string(r.ID),
		StudentID:             r.StudentID,
		Code:                  string(r.Code),
		SubmittedAt:           r.SubmittedAt,
		SuspicionScore:        r.SuspicionScore,
		Violations:            r.Violations,
		Photos:                r.Photos,
		ClosedReason:          r.ClosedReason,
		CompletionTimeSeconds: r.CompletionTimeSeconds,
	}
}

// ReportDetailResponse is the success envelope for report detail
type ReportDetailResponse struct {
	Success bool   `json:"success"`
	Report  Report `json:"report"`
}
