package delete_slots_for_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/availability"
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

// Handle DELETE /api/v1/admin/availability/dates/{date}
// Удаляет все слоты дня, включая занятые
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	resp, err := h.service.RemoveSlotsForDate(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/availability/dates/{date} - Validation failed: %v", err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, availability.ErrInvalidInput))

		default:
			h.logger.Error("DELETE /admin/availability/dates/{date} - Failed to clear day: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/availability/dates/{date} - Day cleared: date=%s, deleted=%d", resp.Date, resp.Deleted)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
