package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// MaxJSONBodyBytes ограничение размера JSON тела запроса
const MaxJSONBodyBytes = 1 << 20

var (
	ErrEmptyBody   = errors.New("handlers: request body is empty")
	ErrInvalidPath = errors.New("handlers: invalid path parameter")
)

// DecodeJSON разбирает JSON тело запроса, неизвестные поля - ошибка
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, MaxJSONBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}

	return nil
}

// PathInt64 положительный целый параметр пути
func PathInt64(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPath, name, raw)
	}
	return id, nil
}

// PathString непустой строковый параметр пути
func PathString(r *http.Request, name string) (string, error) {
	raw := strings.TrimSpace(mux.Vars(r)[name])
	if raw == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrInvalidPath, name)
	}
	return raw, nil
}

// QueryString опциональный параметр запроса: nil, если не передан
func QueryString(r *http.Request, name string) *string {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	return &raw
}

type clientIPKey struct{}

// WithClientIP кладет адрес клиента, определенный middleware.RealIP, в контекст
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

// ClientIP адрес клиента
// Заголовки прокси здесь не читаются: их разбирает middleware.RealIP и только для доверенных прокси
func ClientIP(r *http.Request) string {
	if ip, ok := r.Context().Value(clientIPKey{}).(string); ok && ip != "" {
		return ip
	}
	return RemoteHost(r)
}

// RemoteHost хост непосредственного собеседника по TCP
func RemoteHost(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
