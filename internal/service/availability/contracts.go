package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.AvailabilitySlot) (*domain.AvailabilitySlot, error)
	GetByDateTime(ctx context.Context, date time.Time, t types.TimeString) (*domain.AvailabilitySlot, error)
	List(ctx context.Context, filter domain.SlotsFilter) ([]*domain.AvailabilitySlot, error)
	Delete(ctx context.Context, id int64) error
	DeleteByDate(ctx context.Context, date time.Time) (int64, error)
}

// PresetProvider источник шаблонов времени для быстрого добавления
type PresetProvider interface {
	Times(ctx context.Context) ([]types.TimeString, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
