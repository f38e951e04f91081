package session

import "errors"

var (
	// ErrSessionNotFound сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session.store: session not found")

	ErrMarshal = errors.New("session.store: failed to encode session")
	ErrRedis   = errors.New("session.store: redis error")
)
