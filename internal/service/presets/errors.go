package presets

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном времени в шаблоне
	ErrInvalidInput = errors.New("presets: invalid input data")

	// ErrTooManyPresets возвращается, если шаблонов больше допустимого
	ErrTooManyPresets = errors.New("presets: too many preset times")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("presets: internal error")
)
