package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	submitBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/submit_booking"
)

const (
	photoField = "photo"

	msgInvalidRequestBody = "Invalid request body"
	msgInvalidDate        = "Invalid date, expected YYYY-MM-DD"
	msgInvalidTime        = "Invalid time, expected HH:MM"
	msgPhotoTooLarge      = "Inspiration photo is too large"
	msgPhotoNotImage      = "Inspiration photo must be an image"
	msgDateInPast         = "Booking date is in the past"
	msgServiceNotFound    = "Service not found"
	msgAddonNotFound      = "Add-on not found"
	msgSlotNotAvailable   = "This time slot is no longer available"
)

type Handler struct {
	useCase        SubmitBookingUseCase
	maxUploadBytes int64
	logger         Logger
}

func NewHandler(useCase SubmitBookingUseCase, maxUploadBytes int64, logger Logger) *Handler {
	return &Handler{
		useCase:        useCase,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Handle POST /api/v1/bookings
// JSON тело или multipart/form-data с опциональным фото в поле photo
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var (
		req   *CreateBookingRequest
		photo *handlers.UploadedFile
	)

	if handlers.IsMultipart(r) {
		if err := handlers.ParseMultipart(w, r, h.maxUploadBytes); err != nil {
			h.logger.Warn("POST /bookings - Invalid multipart form: %v", err)
			if errors.Is(err, handlers.ErrFileTooLarge) {
				handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgPhotoTooLarge)
				return
			}
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}

		file, err := handlers.ImageFile(r, photoField, false)
		if err != nil {
			h.logger.Warn("POST /bookings - Invalid photo: %v", err)
			handlers.RespondBadRequest(w, msgPhotoNotImage)
			return
		}
		photo = file
		defer photo.Close()

		req = FromForm(r)
	} else {
		req = &CreateBookingRequest{}
		if err := handlers.DecodeJSON(r, req); err != nil {
			h.logger.Warn("POST /bookings - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	useCaseReq, err := req.ToUseCaseRequest(toPhoto(photo))
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, submitBooking.ErrInvalidInput))

		case errors.Is(err, submitBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in the past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, submitBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, submitBooking.ErrAddonNotFound):
			h.logger.Warn("POST /bookings - Addon not found: addon_ids=%v", req.AddonIDs)
			handlers.RespondNotFound(w, msgAddonNotFound)

		case errors.Is(err, submitBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /bookings - Failed to submit booking: date=%s, time=%s, error=%v", req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, slot_released=%t",
		result.ID, result.SlotReleased)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromSubmitResponse(result))
}

func toPhoto(file *handlers.UploadedFile) *submitBooking.Photo {
	if file == nil {
		return nil
	}
	return &submitBooking.Photo{
		Filename:    file.Filename,
		ContentType: file.ContentType,
		Size:        file.Size,
		Body:        file.Body,
	}
}
