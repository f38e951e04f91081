package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// parseDate разбирает дату YYYY-MM-DD
func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}

	date, err := domain.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be in YYYY-MM-DD format", ErrInvalidInput, field)
	}

	return date, nil
}

// parseTime нормализует время к HH:MM:SS
func parseTime(value string) (types.TimeString, error) {
	if value == "" {
		return "", fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	t, err := types.NewTimeStringFromString(value)
	if err != nil {
		return "", fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidInput)
	}

	return t, nil
}

// validateNotPast проверяет, что дата не раньше сегодняшней в часовом поясе салона
func validateNotPast(date, today time.Time) error {
	if date.Before(today) {
		return fmt.Errorf("%w: %s", ErrDateInPast, date.Format(domain.DateFormat))
	}
	return nil
}
