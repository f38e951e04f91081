package auth

import "errors"

var (
	// ErrNotConfigured возвращается, если хеш пароля администратора не задан
	ErrNotConfigured = errors.New("auth: admin password is not configured")

	// ErrInvalidPassword возвращается при неверном пароле
	ErrInvalidPassword = errors.New("auth: invalid password")

	// ErrUnauthorized возвращается для отсутствующего, неверного или истекшего токена
	ErrUnauthorized = errors.New("auth: unauthorized")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
