package wizard

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия формы не найдена или истекла
	ErrSessionNotFound = errors.New("wizard: booking session not found")

	// ErrWrongStep возвращается при действии, недоступном на текущем шаге
	ErrWrongStep = errors.New("wizard: action is not allowed on the current step")

	// ErrStepIncomplete возвращается при переходе дальше с незаполненным шагом
	ErrStepIncomplete = errors.New("wizard: current step is incomplete")

	// ErrSubmitInProgress возвращается при повторной отправке во время отправки
	ErrSubmitInProgress = errors.New("wizard: submission already in progress")

	// ErrSessionBusy возвращается, когда форму одновременно меняет другой запрос
	ErrSessionBusy = errors.New("wizard: booking session is busy")

	// ErrServiceNotFound возвращается, когда услуги нет в каталоге
	ErrServiceNotFound = errors.New("wizard: service not found")

	// ErrAddonNotFound возвращается, когда дополнения нет в каталоге
	ErrAddonNotFound = errors.New("wizard: addon not found")

	// ErrSlotNotAvailable возвращается, когда на выбранные дату и время нет свободного слота
	ErrSlotNotAvailable = errors.New("wizard: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("wizard: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("wizard: internal error")
)
