package upload_portfolio

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/portfolio"
	"github.com/m04kA/SMC-SalonBooking/internal/service/portfolio/models"
)

const (
	fileField = "file"

	msgInvalidForm  = "Expected multipart form with file, title and category"
	msgFileTooLarge = "Image is too large"
	msgFileMissing  = "Image file is required"
	msgNotAnImage   = "File must be an image"
	msgUploadFailed = "Failed to upload image"
)

type Handler struct {
	service        PortfolioService
	maxUploadBytes int64
	logger         Logger
}

func NewHandler(service PortfolioService, maxUploadBytes int64, logger Logger) *Handler {
	return &Handler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Handle POST /api/v1/admin/portfolio
// multipart/form-data: file, title, category
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !handlers.IsMultipart(r) {
		h.logger.Warn("POST /admin/portfolio - Not a multipart request")
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	if err := handlers.ParseMultipart(w, r, h.maxUploadBytes); err != nil {
		h.logger.Warn("POST /admin/portfolio - Invalid multipart form: %v", err)
		if errors.Is(err, handlers.ErrFileTooLarge) {
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	file, err := handlers.ImageFile(r, fileField, true)
	if err != nil {
		h.logger.Warn("POST /admin/portfolio - Invalid file: %v", err)
		if errors.Is(err, handlers.ErrFileMissing) {
			handlers.RespondBadRequest(w, msgFileMissing)
			return
		}
		handlers.RespondBadRequest(w, msgNotAnImage)
		return
	}
	defer file.Close()

	req := &models.UploadRequest{
		Title:       r.FormValue("title"),
		Category:    r.FormValue("category"),
		Filename:    file.Filename,
		ContentType: file.ContentType,
		Size:        file.Size,
		Body:        file.Body,
	}

	item, err := h.service.Upload(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, portfolio.ErrInvalidInput):
			h.logger.Warn("POST /admin/portfolio - Validation failed: %v", err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, portfolio.ErrInvalidInput))

		case errors.Is(err, portfolio.ErrUploadFailed):
			h.logger.Error("POST /admin/portfolio - Upload failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgUploadFailed)

		default:
			h.logger.Error("POST /admin/portfolio - Failed to save item: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/portfolio - Item created successfully: item_id=%d, category=%s", item.ID, item.Category)
	handlers.RespondJSON(w, http.StatusCreated, item)
}
