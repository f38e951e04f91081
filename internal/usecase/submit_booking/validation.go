package submit_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// validateRequest валидирует и нормализует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if req.CustomerName == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if !req.ContactMethod.IsValid() {
		return fmt.Errorf("%w: unknown contact method %q", ErrInvalidInput, req.ContactMethod)
	}

	req.ContactDetail = strings.TrimSpace(req.ContactDetail)
	if req.ContactDetail == "" {
		return fmt.Errorf("%w: contact detail is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.ContactDetail) > domain.MaxContactDetailLength {
		return fmt.Errorf("%w: contact detail must be at most %d characters", ErrInvalidInput, domain.MaxContactDetailLength)
	}
	if !req.ContactMethod.Accepts(req.ContactDetail) {
		return fmt.Errorf("%w: contact detail must look like %s", ErrInvalidInput, req.ContactMethod.FormatHint())
	}

	if req.Photo != nil && !strings.HasPrefix(strings.ToLower(req.Photo.ContentType), "image/") {
		return fmt.Errorf("%w: inspiration photo must be an image", ErrInvalidInput)
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня в часовом поясе салона
func isDateInPast(date, now time.Time) bool {
	return domain.TruncateToDay(date).Before(domain.TruncateToDay(now))
}
