package list_bookings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct {
	got *models.ListBookingsRequest
	err error
}

func (f *fakeService) List(_ context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingListResponse{
		Bookings: []models.BookingResponse{{ID: 2, Date: "2025-01-10"}, {ID: 1, Date: "2025-01-10"}},
		Total:    2,
	}, nil
}

func get(h *Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_ByDate(t *testing.T) {
	svc := &fakeService{}
	rec := get(NewHandler(svc, logger.NewNop()), "/api/v1/admin/bookings?date=2025-01-10")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got.Date)
	assert.Equal(t, "2025-01-10", *svc.got.Date)

	var resp models.BookingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "bad date", err: fmt.Errorf("%w: date", bookings.ErrInvalidInput), wantCode: http.StatusBadRequest, wantMsg: msgInvalidDate},
		{name: "db down", err: bookings.ErrInternal, wantCode: http.StatusInternalServerError, wantMsg: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(NewHandler(&fakeService{err: tt.err}, logger.NewNop()), "/api/v1/admin/bookings?date=tomorrow")

			assert.Equal(t, tt.wantCode, rec.Code)
			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMsg, resp.Error)
		})
	}
}
