package admin_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/auth"
	"github.com/m04kA/SMC-SalonBooking/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgPasswordRequired   = "Password is required"
	msgInvalidPassword    = "Invalid password"
	msgNotConfigured      = "Server configuration error"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Password == "" {
		h.logger.Warn("POST /admin/login - Empty password")
		handlers.RespondBadRequest(w, msgPasswordRequired)
		return
	}

	clientIP := handlers.ClientIP(r)

	resp, err := h.service.Login(r.Context(), &req, clientIP)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidPassword):
			h.logger.Warn("POST /admin/login - Invalid password: ip=%s", clientIP)
			handlers.RespondUnauthorized(w, msgInvalidPassword)

		case errors.Is(err, auth.ErrNotConfigured):
			h.logger.Error("POST /admin/login - Admin auth is not configured")
			handlers.RespondError(w, http.StatusInternalServerError, msgNotConfigured)

		default:
			h.logger.Error("POST /admin/login - Failed to login: ip=%s, error=%v", clientIP, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/login - Admin logged in: ip=%s", clientIP)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
