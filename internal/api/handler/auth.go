package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nexproctor/proctor-server/internal/api/apierr"
	"github.com/nexproctor/proctor-server/internal/api/request"
	"github.com/nexproctor/proctor-server/internal/api/response"
	"github.com/nexproctor/proctor-server/internal/services/auth"
)

// AuthHandler handles proctor authentication endpoints
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /api/proctor/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("password is required"))
		return
	}

	session, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LoginResponseFromSession(session))
}
