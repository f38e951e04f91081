package booking_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/wizard/models"
	submitBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/submit_booking"
)

const photoField = "photo"

// Handler пошаговая форма бронирования
// Один обработчик на все маршруты /booking-sessions, состояние хранится в сессии
type Handler struct {
	service        WizardService
	maxUploadBytes int64
	logger         Logger
}

func NewHandler(service WizardService, maxUploadBytes int64, logger Logger) *Handler {
	return &Handler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Start POST /api/v1/booking-sessions
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	form, err := h.service.Start(r.Context())
	if err != nil {
		h.respondError(w, "POST /booking-sessions", "", err)
		return
	}

	h.logger.Info("POST /booking-sessions - Session started: session=%s", form.SessionID)
	handlers.RespondJSON(w, http.StatusCreated, form)
}

// Get GET /api/v1/booking-sessions/{sessionId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	const route = "GET /booking-sessions/{id}"

	sessionID, ok := h.sessionID(w, r, route)
	if !ok {
		return
	}

	form, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		h.respondError(w, route, sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, form)
}

// Cancel DELETE /api/v1/booking-sessions/{sessionId}
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	const route = "DELETE /booking-sessions/{id}"

	sessionID, ok := h.sessionID(w, r, route)
	if !ok {
		return
	}

	if err := h.service.Cancel(r.Context(), sessionID); err != nil {
		h.respondError(w, route, sessionID, err)
		return
	}

	h.logger.Info("%s - Session cancelled: session=%s", route, sessionID)
	handlers.RespondNoContent(w)
}

// SelectService PUT /api/v1/booking-sessions/{sessionId}/service
func (h *Handler) SelectService(w http.ResponseWriter, r *http.Request) {
	const route = "PUT /booking-sessions/{id}/service"

	sessionID, ok := h.sessionID(w, r, route)
	if !ok {
		return
	}

	var req models.SelectServiceRequest
	if !h.decode(w, r, route, &req) {
		return
	}

	h.respondForm(w, route, sessionID)(h.service.SelectService(r.Context(), sessionID, &req))
}

// ToggleAddon POST /api/v1/booking-sessions/{sessionId}/addons/{addonId}/toggle
func (h *Handler) ToggleAddon(w http.ResponseWriter, r *http.Request) {
	const route = "POST /booking-sessions/{id}/addons/{addonId}/toggle"

	sessionID, ok := h.sessionID(w, r, route)
	if !ok {
		return
	}

	addonID, err := handlers.PathString(r, "addonId")
	if err != nil {
		h.logger.Warn("%s - Invalid addon ID: %v", route, err)
		handlers.RespondNotFound(w, msgAddonNotFound)
		return
	}

	h.respondForm(w, route, sessionID)(h.service.ToggleAddon(r.Context(), sessionID, addonID))
}

// SelectDateTime PUT /api/v1/booking-sessions/{sessionId}/datetime
func (h *Handler) SelectDateTime(w http.ResponseWriter, r *http.Request) {
	const route = "PUT /booking-sessions/{id}/datetime"

	sessionID, ok := h.sessionID(w, r, route)
	if !ok {
		return
	}

	var req models.SelectDateTimeRequest
	if !h.decode(w, r, route, &req) {
		return
	}

	h.respondForm(w, route, sessionID)(h.service.SelectDateTime(r.Context(), sessionID, &req))
}

// SetDetails PUT /api/v1/booking-sessions/{sessionId}/details
func (h *Handler) SetDetails(w http.ResponseWriter, r *http.Request) {
	const route = "PUT /booking-sessions/{id}/details"

	sessionID, ok := h.sessionID(w, r, route)
	if !ok {
		return
	}

	var req models.SetDetailsRequest
	if !h.decode(w, r, route, &req) {
		return
	}

	h.respondForm(w, route, sessionID)(h.service.SetDetails(r.Context(), sessionID, &req))
}

// Next POST /api/v1/booking-sessions/{sessionId}/next
func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	const route = "POST /booking-sessions/{id}/next"

	sessionID, ok := h.sessionID(w, r, route)
	if !ok {
		return
	}

	h.respondForm(w, route, sessionID)(h.service.Next(r.Context(), sessionID))
}

// Back POST /api/v1/booking-sessions/{sessionId}/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	const route = "POST /booking-sessions/{id}/back"

	sessionID, ok := h.sessionID(w, r, route)
	if !ok {
		return
	}

	h.respondForm(w, route, sessionID)(h.service.Back(r.Context(), sessionID))
}

// Submit POST /api/v1/booking-sessions/{sessionId}/submit
// Тело пустое или multipart/form-data с опциональным фото в поле photo
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const route = "POST /booking-sessions/{id}/submit"

	sessionID, ok := h.sessionID(w, r, route)
	if !ok {
		return
	}

	var photo *submitBooking.Photo
	if handlers.IsMultipart(r) {
		if err := handlers.ParseMultipart(w, r, h.maxUploadBytes); err != nil {
			h.logger.Warn("%s - Invalid multipart form: %v", route, err)
			if errors.Is(err, handlers.ErrFileTooLarge) {
				handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgPhotoTooLarge)
				return
			}
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}

		file, err := handlers.ImageFile(r, photoField, false)
		if err != nil {
			h.logger.Warn("%s - Invalid photo: %v", route, err)
			handlers.RespondBadRequest(w, msgPhotoNotImage)
			return
		}
		if file != nil {
			defer file.Close()
			photo = &submitBooking.Photo{
				Filename:    file.Filename,
				ContentType: file.ContentType,
				Size:        file.Size,
				Body:        file.Body,
			}
		}
	}

	result, err := h.service.Submit(r.Context(), sessionID, photo)
	if err != nil {
		h.respondError(w, route, sessionID, err)
		return
	}

	h.logger.Info("%s - Booking created successfully: session=%s, booking_id=%d, slot_released=%t",
		route, sessionID, result.ID, result.SlotReleased)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromSubmitResponse(result))
}

func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request, route string) (string, bool) {
	sessionID, err := handlers.PathString(r, "sessionId")
	if err != nil {
		h.logger.Warn("%s - Invalid session ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return "", false
	}
	return sessionID, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, route string, dst interface{}) bool {
	if err := handlers.DecodeJSON(r, dst); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return false
	}
	return true
}

// respondForm пишет состояние формы или ошибку шага
func (h *Handler) respondForm(w http.ResponseWriter, route, sessionID string) func(*models.FormResponse, error) {
	return func(form *models.FormResponse, err error) {
		if err != nil {
			h.respondError(w, route, sessionID, err)
			return
		}

		h.logger.Info("%s - Session updated: session=%s, step=%s", route, sessionID, form.StepName)
		handlers.RespondJSON(w, http.StatusOK, form)
	}
}
