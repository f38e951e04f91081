package submit_booking

import (
	"context"
	"io"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByDateTime(ctx context.Context, date time.Time, t types.TimeString) (*domain.AvailabilitySlot, error)
	Reserve(ctx context.Context, date time.Time, t types.TimeString, bookingID int64) (bool, error)
}

// Catalog справочник услуг и дополнений
type Catalog interface {
	Service(id string) (*domain.Service, error)
	AddonsByIDs(ids []string) ([]*domain.Addon, error)
}

// PhotoStorage хранилище фото-примеров
type PhotoStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

// Notifier канал уведомления салона о новом бронировании
type Notifier interface {
	Name() string
	NotifyNewBooking(ctx context.Context, booking *domain.Booking) error
}

// MetricsCollector счетчики шагов бронирования
type MetricsCollector interface {
	IncBookingSubmitted(result string)
	IncSlotRelease(result string)
	IncUpload(kind, result string)
	IncNotification(channel, result string)
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
