package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nexproctor/proctor-server/internal/model"
	"github.com/nexproctor/proctor-server/internal/services/auth"
)

// APIError represents an API error payload
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform failure envelope
type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeInvalidCredentials   = "INVALID_CREDENTIALS"
	CodeInvalidOrExpiredCode = "INVALID_OR_EXPIRED_CODE"
	CodeUnknownCode          = "UNKNOWN_CODE"
	CodeReportNotFound       = "REPORT_NOT_FOUND"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeInternalError        = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Success: false, Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid proctor credentials"}}
	case errors.Is(err, auth.ErrInvalidToken):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired token"}}
	case errors.Is(err, model.ErrInvalidOrExpiredCode):
		return &httpError{http.StatusForbidden, APIError{CodeInvalidOrExpiredCode, "Invalid or expired unique test code"}}
	case errors.Is(err, model.ErrUnknownCode):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownCode, "Cannot submit report for invalid code"}}
	case errors.Is(err, model.ErrReportNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeReportNotFound, "Report not found"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
