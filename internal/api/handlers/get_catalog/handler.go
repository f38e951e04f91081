package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
)

// Handler отдает статический прайс
// Каталог не меняется во время работы, ответ собирается один раз
type Handler struct {
	response *CatalogResponse
}

func NewHandler(c Catalog) *Handler {
	return &Handler{response: FromCatalog(c)}
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.response)
}
