package get_presets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/presets/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) Get(context.Context) (*models.PresetsResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.PresetsResponse{
		Times:        []string{"09:00:00", "10:00:00"},
		DisplayTimes: []string{"9:00 AM", "10:00 AM"},
		IsDefault:    true,
	}, nil
}

func get(h *Handler) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/presets", nil))
	return rec
}

func TestHandle_Success(t *testing.T) {
	rec := get(NewHandler(&fakeService{}, logger.NewNop()))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.PresetsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.IsDefault)
	assert.Equal(t, []string{"9:00 AM", "10:00 AM"}, resp.DisplayTimes)
}

func TestHandle_InternalError(t *testing.T) {
	rec := get(NewHandler(&fakeService{err: errors.New("db down")}, logger.NewNop()))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}
