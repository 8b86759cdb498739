package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nexproctor/proctor-server/internal/api/apierr"
	"github.com/nexproctor/proctor-server/internal/api/request"
	"github.com/nexproctor/proctor-server/internal/api/response"
	"github.com/nexproctor/proctor-server/internal/services/code"
)

// CodeHandler handles exam code endpoints
type CodeHandler struct {
	registry *code.Registry
}

// NewCodeHandler creates a new code handler
func NewCodeHandler(registry *code.Registry) *CodeHandler {
	return &CodeHandler{
		registry: registry,
	}
}

// Generate handles POST /api/proctor/generate_code
func (h *CodeHandler) Generate(w http.ResponseWriter, r *http.Request) {
	generated, err := h.registry.Generate(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GenerateCodeResponse{
		Success: true,
		Code:    string(generated.Value),
	})
}

// List handles GET /api/proctor/codes
func (h *CodeHandler) List(w http.ResponseWriter, r *http.Request) {
	codes, err := h.registry.List(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ListCodesResponseFromModel(codes))
}

// Verify handles POST /api/exam/verify_code
func (h *CodeHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Code == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("code is required"))
		return
	}
	if req.StudentID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("student_id is required"))
		return
	}

	if err := h.registry.Verify(r.Context(), req.Code, req.StudentID); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{
		Success: true,
		Message: "Code verified. Access granted.",
	})
}
