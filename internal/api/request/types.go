package request

// LoginRequest is the request body for proctor login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// VerifyCodeRequest is the request body for verifying an exam code
type VerifyCodeRequest struct {
	Code      string `json:"code"`
	StudentID string `json:"student_id"`
}

// SubmitReportRequest is the request body for submitting an exam report
type SubmitReportRequest struct {
	StudentID      string           `json:"student_id"`
	Code           string           `json:"code"`
	SuspicionScore float64          `json:"suspicion_score"`
	Violations     []map[string]any `json:"violations"`
	Photos         []map[string]any `json:"photos"`
	ClosedReason   string           `json:"closed_reason,omitempty"`
	TimeRemaining  int              `json:"time_remaining"`
	Duration       int              `json:"duration"`
}
