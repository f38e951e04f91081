package update_presets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/presets"
	"github.com/m04kA/SMC-SalonBooking/internal/service/presets/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct {
	got *models.UpdatePresetsRequest
	err error
}

func (f *fakeService) Update(_ context.Context, req *models.UpdatePresetsRequest) (*models.PresetsResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.PresetsResponse{Times: []string{"09:00:00", "14:00:00"}}, nil
}

func put(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPut, "/api/v1/admin/presets", strings.NewReader(body)))
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeService{}
	rec := put(NewHandler(svc, logger.NewNop()), `{"times":["14:00","09:00"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"14:00", "09:00"}, svc.got.Times)

	var resp models.PresetsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"09:00:00", "14:00:00"}, resp.Times)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "unknown field",
			body:     `{"slots":["09:00"]}`,
			wantCode: http.StatusBadRequest,
			wantMsg:  msgInvalidRequestBody,
		},
		{
			name:     "bad time",
			body:     `{"times":["9am"]}`,
			err:      fmt.Errorf("%w: invalid time \"9am\"", presets.ErrInvalidInput),
			wantCode: http.StatusBadRequest,
			wantMsg:  "Invalid time \"9am\"",
		},
		{
			name:     "too many",
			body:     `{"times":["09:00"]}`,
			err:      presets.ErrTooManyPresets,
			wantCode: http.StatusBadRequest,
			wantMsg:  msgTooManyPresets,
		},
		{
			name:     "db down",
			body:     `{"times":["09:00"]}`,
			err:      presets.ErrInternal,
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			rec := put(NewHandler(svc, logger.NewNop()), tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMsg, resp.Error)
		})
	}
}
