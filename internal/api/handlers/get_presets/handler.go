package get_presets

import (
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
)

type Handler struct {
	service PresetsService
	logger  Logger
}

func NewHandler(service PresetsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/presets
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/presets - Failed to get presets: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/presets - Presets retrieved: count=%d, default=%t", len(resp.Times), resp.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
