package portfolio

import (
	"context"
	"io"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// PortfolioRepository интерфейс репозитория портфолио
type PortfolioRepository interface {
	Create(ctx context.Context, item *domain.PortfolioItem) (*domain.PortfolioItem, error)
	GetByID(ctx context.Context, id int64) (*domain.PortfolioItem, error)
	List(ctx context.Context, category *domain.PortfolioCategory) ([]*domain.PortfolioItem, error)
	Delete(ctx context.Context, id int64) error
}

// ObjectStorage хранилище изображений
type ObjectStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	KeyFromURL(url string) string
}

// MetricsCollector счетчики загрузок (может быть nil)
type MetricsCollector interface {
	IncUpload(kind, result string)
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
