package admin_session

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
)

const msgMissingSession = "Missing admin session"

// SessionResponse текущая сессия администратора
type SessionResponse struct {
	Authenticated bool      `json:"authenticated"`
	CreatedAt     time.Time `json:"createdAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/v1/admin/session
// Позволяет админке проверить сохраненный токен; сама проверка делается middleware
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SessionResponse{
		Authenticated: true,
		CreatedAt:     session.CreatedAt,
		ExpiresAt:     session.ExpiresAt,
	})
}
