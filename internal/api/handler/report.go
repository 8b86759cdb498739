package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nexproctor/proctor-server/internal/api/apierr"
	"github.com/nexproctor/proctor-server/internal/api/request"
	"github.com/nexproctor/proctor-server/internal/api/response"
	"github.com/nexproctor/proctor-server/internal/model"
	"github.com/nexproctor/proctor-server/internal/services/report"
)

// ReportHandler handles exam report endpoints
type ReportHandler struct {
	store *report.Store
}

// NewReportHandler creates a new report handler
func NewReportHandler(store *report.Store) *ReportHandler {
	return &ReportHandler{
		store: store,
	}
}

// Submit handles POST /api/exam/submit
func (h *ReportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.StudentID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("student_id is required"))
		return
	}
	if req.Code == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("code is required"))
		return
	}

	record, err := h.store.Submit(r.Context(), model.ReportSubmission{
		StudentID:      req.StudentID,
		Code:           req.Code,
		SuspicionScore: req.SuspicionScore,
		Violations:     req.Violations,
		Photos:         req.Photos,
		ClosedReason:   req.ClosedReason,
		TimeRemaining:  req.TimeRemaining,
		Duration:       req.Duration,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SubmitReportResponse{
		Success:  true,
		Message:  "Exam report secured successfully.",
		ReportID: string(record.ID),
	})
}

// List handles GET /api/proctor/reports
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.store.ListSummaries(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ListReportsResponseFromModel(summaries))
}

// GetDetail handles GET /api/proctor/reports/{report_id}
func (h *ReportHandler) GetDetail(w http.ResponseWriter, r *http.Request) {
	id := model.ReportID(mux.Vars(r)["report_id"])

	record, err := h.store.GetDetail(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ReportDetailResponse{
		Success: true,
		Report:  response.ReportFromModel(record),
	})
}
