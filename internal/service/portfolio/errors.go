package portfolio

import "errors"

var (
	// ErrItemNotFound возвращается, когда работа не найдена
	ErrItemNotFound = errors.New("portfolio: item not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("portfolio: invalid input data")

	// ErrUploadFailed возвращается, если изображение не удалось загрузить
	ErrUploadFailed = errors.New("portfolio: upload failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("portfolio: internal error")
)
