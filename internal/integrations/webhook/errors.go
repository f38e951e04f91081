package webhook

import "errors"

var (
	// ErrNotConfigured возвращается, если URL вебхука не задан
	ErrNotConfigured = errors.New("webhook client: url is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("webhook client: internal error")

	// ErrInvalidResponse возвращается, если получатель ответил не 2xx
	ErrInvalidResponse = errors.New("webhook client: invalid response")
)
