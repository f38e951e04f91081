package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct{}

func (fakeService) GetByID(_ context.Context, id int64) (*models.BookingResponse, error) {
	if id == 7 {
		return &models.BookingResponse{ID: 7}, nil
	}
	return nil, bookings.ErrBookingNotFound
}

func TestHandle(t *testing.T) {
	h := NewHandler(fakeService{}, logger.NewNop())

	tests := []struct {
		id   string
		want int
	}{
		{id: "7", want: http.StatusOK},
		{id: "8", want: http.StatusNotFound},
		{id: "abc", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings/"+tt.id, nil)
			req = mux.SetURLVars(req, map[string]string{"bookingId": tt.id})
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
