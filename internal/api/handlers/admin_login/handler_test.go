package admin_login

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/auth"
	"github.com/m04kA/SMC-SalonBooking/internal/service/auth/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeAuth struct {
	password string
	err      error
	clientIP string
}

func (f *fakeAuth) Login(_ context.Context, req *models.LoginRequest, clientIP string) (*models.LoginResponse, error) {
	f.clientIP = clientIP
	if f.err != nil {
		return nil, f.err
	}
	if req.Password != f.password {
		return nil, auth.ErrInvalidPassword
	}
	return &models.LoginResponse{
		Success:   true,
		Token:     "signed.jwt.token",
		ExpiresAt: time.Date(2025, 1, 10, 17, 0, 0, 0, time.UTC),
	}, nil
}

func login(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(body))
	req = req.WithContext(handlers.WithClientIP(req.Context(), "203.0.113.9"))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeAuth{password: "s3cret"}
	rec := login(NewHandler(svc, logger.NewNop()), `{"password":"s3cret"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "203.0.113.9", svc.clientIP)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "signed.jwt.token", resp.Token)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "wrong password", body: `{"password":"guess"}`, wantCode: http.StatusUnauthorized, wantMsg: "Invalid password"},
		{name: "empty password", body: `{"password":""}`, wantCode: http.StatusBadRequest, wantMsg: msgPasswordRequired},
		{name: "bad json", body: `password`, wantCode: http.StatusBadRequest, wantMsg: msgInvalidRequestBody},
		{name: "not configured", body: `{"password":"x"}`, err: auth.ErrNotConfigured, wantCode: http.StatusInternalServerError, wantMsg: "Server configuration error"},
		{name: "redis down", body: `{"password":"x"}`, err: errors.New("dial tcp"), wantCode: http.StatusInternalServerError, wantMsg: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := login(NewHandler(&fakeAuth{password: "s3cret", err: tt.err}, logger.NewNop()), tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMsg, resp.Error)
		})
	}
}
