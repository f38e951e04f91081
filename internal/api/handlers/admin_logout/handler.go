package admin_logout

import (
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/auth/models"
)

const msgMissingSession = "Missing admin session"

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

// Handle POST /api/v1/admin/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Warn("POST /admin/logout - Missing session")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	if err := h.service.Logout(r.Context(), session.ID); err != nil {
		h.logger.Error("POST /admin/logout - Failed to logout: session=%s, error=%v", session.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/logout - Admin logged out: session=%s", session.ID)
	handlers.RespondJSON(w, http.StatusOK, models.LogoutResponse{Success: true})
}
