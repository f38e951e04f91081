package update_presets

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/presets"
	"github.com/m04kA/SMC-SalonBooking/internal/service/presets/models"
)

const msgInvalidRequestBody = "Invalid request body"

var msgTooManyPresets = fmt.Sprintf("At most %d preset times are allowed", domain.MaxPresets)

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

// Handle PUT /api/v1/admin/presets
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePresetsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/presets - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, presets.ErrInvalidInput):
			h.logger.Warn("PUT /admin/presets - Validation failed: %v", err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, presets.ErrInvalidInput))

		case errors.Is(err, presets.ErrTooManyPresets):
			h.logger.Warn("PUT /admin/presets - Too many presets: %v", err)
			handlers.RespondBadRequest(w, msgTooManyPresets)

		default:
			h.logger.Error("PUT /admin/presets - Failed to update presets: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/presets - Presets updated: count=%d, default=%t", len(resp.Times), resp.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
