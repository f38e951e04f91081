package submit_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуги нет в каталоге
	ErrServiceNotFound = errors.New("submit_booking: service not found")

	// ErrAddonNotFound возвращается, когда дополнения нет в каталоге
	ErrAddonNotFound = errors.New("submit_booking: addon not found")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("submit_booking: invalid booking date")

	// ErrSlotNotAvailable возвращается, когда свободного слота на эти дату и время нет
	ErrSlotNotAvailable = errors.New("submit_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)
