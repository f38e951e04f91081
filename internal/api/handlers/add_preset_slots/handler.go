package add_preset_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/availability"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgDateInPast         = "Cannot open slots on a past date"
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

// Handle POST /api/v1/admin/availability/presets
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddPresetSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/availability/presets - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.AddPresetSlots(r.Context(), req.Date)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /admin/availability/presets - Validation failed: %v", err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, availability.ErrInvalidInput))

		case errors.Is(err, availability.ErrDateInPast):
			h.logger.Warn("POST /admin/availability/presets - Date in the past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		default:
			h.logger.Error("POST /admin/availability/presets - Failed to add preset slots: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/availability/presets - Preset slots added: date=%s, added=%d, skipped=%d",
		resp.Date, len(resp.Added), len(resp.Skipped))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
