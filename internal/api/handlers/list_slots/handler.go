package list_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/availability"
	"github.com/m04kA/SMC-SalonBooking/internal/service/availability/models"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/availability
// Query params: from, to (optional, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListSlotsRequest{
		From: handlers.QueryString(r, "from"),
		To:   handlers.QueryString(r, "to"),
	}

	resp, err := h.service.ListSlots(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /admin/availability - Invalid range: %v", err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, availability.ErrInvalidInput))

		default:
			h.logger.Error("GET /admin/availability - Failed to list slots: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/availability - Slots retrieved: count=%d", len(resp.Slots))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
