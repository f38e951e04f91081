package wizard

import "errors"

var (
	// ErrFormNotFound форма не найдена или истекла
	ErrFormNotFound = errors.New("wizard.store: form not found")

	ErrMarshal = errors.New("wizard.store: failed to encode form")
	ErrRedis   = errors.New("wizard.store: redis error")
)
