package wizard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// FormStore хранилище незавершенных форм
type FormStore interface {
	Save(ctx context.Context, form *domain.BookingForm) error
	Get(ctx context.Context, sessionID string) (*domain.BookingForm, error)
	Delete(ctx context.Context, sessionID string) error
	AcquireLock(ctx context.Context, sessionID string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, sessionID string) error
}

// Catalog справочник услуг и дополнений
type Catalog interface {
	Service(id string) (*domain.Service, error)
	Addon(id string) (*domain.Addon, error)
}

// SlotReader чтение слотов для проверки выбранного времени
type SlotReader interface {
	GetByDateTime(ctx context.Context, date time.Time, t types.TimeString) (*domain.AvailabilitySlot, error)
}

// BookingSubmitter отправка заполненной формы
type BookingSubmitter interface {
	Execute(ctx context.Context, req *submit_booking.Request) (*submit_booking.Response, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
