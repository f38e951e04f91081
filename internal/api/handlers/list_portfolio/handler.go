package list_portfolio

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/portfolio"
	"github.com/m04kA/SMC-SalonBooking/internal/service/portfolio/models"
)

const msgUnknownCategory = "Unknown portfolio category"

type Handler struct {
	service PortfolioService
	logger  Logger
}

func NewHandler(service PortfolioService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/portfolio
// Query params: category (optional, "all" по умолчанию)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRequest{Category: r.URL.Query().Get("category")}

	resp, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, portfolio.ErrInvalidInput):
			h.logger.Warn("GET /portfolio - Unknown category: %s", req.Category)
			handlers.RespondBadRequest(w, msgUnknownCategory)

		default:
			h.logger.Error("GET /portfolio - Failed to list portfolio: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /portfolio - Portfolio retrieved: category=%s, items=%d", resp.Category, len(resp.Items))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
