package handlers

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// 1x1 PNG
var pngPixel, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==")

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConflict(rec, "Slot is no longer available")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"error":"Slot is no longer available"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Password string `json:"password"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"password":"x"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "x", dst.Password)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"password":"x","extra":1}`))
	assert.Error(t, DecodeJSON(req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeJSON(req, &dst), ErrEmptyBody)
}

func TestPathInt64(t *testing.T) {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "42"})
	id, err := PathInt64(req, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "abc", "0", "-3"} {
		req = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": raw})
		_, err = PathInt64(req, "id")
		assert.ErrorIs(t, err, ErrInvalidPath, raw)
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", ClientIP(req))

	// заголовки сами по себе не учитываются
	req.Header.Set("X-Real-IP", "198.51.100.7")
	req.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	assert.Equal(t, "192.0.2.1", ClientIP(req))

	req = req.WithContext(WithClientIP(req.Context(), "203.0.113.5"))
	assert.Equal(t, "203.0.113.5", ClientIP(req))
}

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("title", "Chrome tips"))
	if content != nil {
		part, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestImageFile(t *testing.T) {
	t.Run("png is accepted and body is complete", func(t *testing.T) {
		req := multipartRequest(t, "photo", "nails.png", pngPixel)
		require.True(t, IsMultipart(req))
		require.NoError(t, ParseMultipart(httptest.NewRecorder(), req, 1<<20))

		file, err := ImageFile(req, "photo", true)
		require.NoError(t, err)
		require.NotNil(t, file)
		defer file.Close()

		assert.Equal(t, "image/png", file.ContentType)
		assert.Equal(t, "nails.png", file.Filename)

		data, err := io.ReadAll(file.Body)
		require.NoError(t, err)
		assert.Equal(t, pngPixel, data)
	})

	t.Run("text is rejected", func(t *testing.T) {
		req := multipartRequest(t, "photo", "nails.png", []byte("definitely not an image"))
		require.NoError(t, ParseMultipart(httptest.NewRecorder(), req, 1<<20))

		_, err := ImageFile(req, "photo", false)
		assert.ErrorIs(t, err, ErrNotAnImage)
	})

	t.Run("optional file missing", func(t *testing.T) {
		req := multipartRequest(t, "photo", "", nil)
		require.NoError(t, ParseMultipart(httptest.NewRecorder(), req, 1<<20))

		file, err := ImageFile(req, "photo", false)
		require.NoError(t, err)
		assert.Nil(t, file)

		_, err = ImageFile(req, "photo", true)
		assert.ErrorIs(t, err, ErrFileMissing)
	})

	t.Run("too large", func(t *testing.T) {
		req := multipartRequest(t, "photo", "nails.png", bytes.Repeat(pngPixel, 100))
		err := ParseMultipart(httptest.NewRecorder(), req, 256)
		assert.Error(t, err)
	})
}

func TestFromSubmitResponse(t *testing.T) {
	tm, err := types.NewTimeStringFromString("14:00")
	require.NoError(t, err)

	resp := FromSubmitResponse(&submit_booking.Response{
		ID:                  7,
		Date:                time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		Time:                tm,
		CustomerName:        "Jane",
		ContactMethod:       domain.ContactEmail,
		ContactDetail:       "jane@example.com",
		ServiceName:         "Classic Manicure",
		InspirationPhotoURL: ptr.Ptr("https://cdn.example.com/inspiration/1.png"),
		EstimatedTotal:      60,
		CreatedAt:           time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC),
		SlotReleased:        true,
	})

	assert.True(t, resp.Success)
	assert.Equal(t, "2025-01-10", resp.Date)
	assert.Equal(t, "Friday, January 10, 2025", resp.DisplayDate)
	assert.Equal(t, "2:00 PM", resp.DisplayTime)
	assert.Equal(t, "email", resp.ContactMethod)
	assert.NotNil(t, resp.Addons)
	assert.Empty(t, resp.Addons)
	assert.Equal(t, 60.0, resp.EstimatedTotal)
	assert.Equal(t, "2025-01-09T12:00:00Z", resp.CreatedAt)
}

func TestValidationMessage(t *testing.T) {
	sentinel := errors.New("submit_booking: invalid input data")

	err := fmt.Errorf("%w: name is required", sentinel)
	assert.Equal(t, "Name is required", ValidationMessage(err, sentinel))

	assert.Equal(t, "Invalid request data", ValidationMessage(sentinel, sentinel))
}
