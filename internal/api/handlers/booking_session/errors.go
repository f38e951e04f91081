package booking_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/wizard"
	submitBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidSessionID   = "Invalid booking session ID"
	msgSessionNotFound    = "Booking session not found or expired"
	msgWrongStep          = "This action is not available on the current step"
	msgStepIncomplete     = "Please complete the current step first"
	msgSubmitInProgress   = "Booking is already being submitted"
	msgSessionBusy        = "Booking session is being updated, try again"
	msgServiceNotFound    = "Service not found"
	msgAddonNotFound      = "Add-on not found"
	msgSlotNotAvailable   = "This time slot is no longer available"
	msgDateInPast         = "Booking date is in the past"
	msgPhotoTooLarge      = "Inspiration photo is too large"
	msgPhotoNotImage      = "Inspiration photo must be an image"
)

// respondError переводит ошибки формы и отправки бронирования в HTTP ответ
func (h *Handler) respondError(w http.ResponseWriter, route, sessionID string, err error) {
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		h.logger.Warn("%s - Session not found: session=%s", route, sessionID)
		handlers.RespondNotFound(w, msgSessionNotFound)

	case errors.Is(err, wizard.ErrWrongStep):
		h.logger.Warn("%s - Wrong step: session=%s, error=%v", route, sessionID, err)
		handlers.RespondConflict(w, msgWrongStep)

	case errors.Is(err, wizard.ErrStepIncomplete):
		h.logger.Warn("%s - Step incomplete: session=%s, error=%v", route, sessionID, err)
		handlers.RespondBadRequest(w, msgStepIncomplete)

	case errors.Is(err, wizard.ErrSubmitInProgress):
		h.logger.Warn("%s - Submit in progress: session=%s", route, sessionID)
		handlers.RespondConflict(w, msgSubmitInProgress)

	case errors.Is(err, wizard.ErrSessionBusy):
		h.logger.Warn("%s - Session busy: session=%s", route, sessionID)
		handlers.RespondConflict(w, msgSessionBusy)

	case errors.Is(err, wizard.ErrServiceNotFound), errors.Is(err, submitBooking.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: session=%s, error=%v", route, sessionID, err)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, wizard.ErrAddonNotFound), errors.Is(err, submitBooking.ErrAddonNotFound):
		h.logger.Warn("%s - Addon not found: session=%s, error=%v", route, sessionID, err)
		handlers.RespondNotFound(w, msgAddonNotFound)

	case errors.Is(err, wizard.ErrSlotNotAvailable), errors.Is(err, submitBooking.ErrSlotNotAvailable):
		h.logger.Warn("%s - Slot not available: session=%s", route, sessionID)
		handlers.RespondConflict(w, msgSlotNotAvailable)

	case errors.Is(err, submitBooking.ErrInvalidDate):
		h.logger.Warn("%s - Date in the past: session=%s", route, sessionID)
		handlers.RespondBadRequest(w, msgDateInPast)

	case errors.Is(err, wizard.ErrInvalidInput):
		h.logger.Warn("%s - Validation failed: session=%s, error=%v", route, sessionID, err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err, wizard.ErrInvalidInput))

	case errors.Is(err, submitBooking.ErrInvalidInput):
		h.logger.Warn("%s - Validation failed: session=%s, error=%v", route, sessionID, err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err, submitBooking.ErrInvalidInput))

	default:
		h.logger.Error("%s - Failed: session=%s, error=%v", route, sessionID, err)
		handlers.RespondInternalError(w)
	}
}
