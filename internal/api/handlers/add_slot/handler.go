package add_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/availability"
	"github.com/m04kA/SMC-SalonBooking/internal/service/availability/models"
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

// Handle POST /api/v1/admin/availability
// 201 для нового слота, 200 если такой слот уже был
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.AddSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.AddSlot(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /admin/availability - Validation failed: %v", err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, availability.ErrInvalidInput))

		case errors.Is(err, availability.ErrDateInPast):
			h.logger.Warn("POST /admin/availability - Date in the past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		default:
			h.logger.Error("POST /admin/availability - Failed to add slot: date=%s, time=%s, error=%v", req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}

	h.logger.Info("POST /admin/availability - Slot saved: slot_id=%d, created=%t", resp.Slot.ID, resp.Created)
	handlers.RespondJSON(w, status, resp)
}
