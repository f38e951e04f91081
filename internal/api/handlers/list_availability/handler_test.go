package list_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	listAvailability "github.com/m04kA/SMC-SalonBooking/internal/usecase/list_availability"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeUseCase struct {
	got *listAvailability.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *listAvailability.Request) (*listAvailability.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &listAvailability.Response{
		Days: []listAvailability.Day{{
			Date:        time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			DisplayDate: "Friday, January 10, 2025",
			Slots: []listAvailability.Slot{
				{ID: 1, Time: "09:00:00", DisplayTime: "9:00 AM"},
				{ID: 2, Time: "14:00:00", DisplayTime: "2:00 PM"},
			},
		}},
		TotalSlots: 2,
	}, nil
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, uc.got.Date)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Days, 1)
	assert.Equal(t, "2025-01-10", resp.Days[0].Date)
	assert.Equal(t, "2:00 PM", resp.Days[0].Slots[1].DisplayTime)
	assert.Equal(t, 2, resp.TotalSlots)
}

func TestHandle_DateFilter(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=2025-01-10", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got.Date)
	assert.Equal(t, "2025-01-10", uc.got.Date.Format("2006-01-02"))

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=tomorrow", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_Internal(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: errors.New("db down")}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
