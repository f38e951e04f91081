package portfolio

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/objectstorage"
	portfolioRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/portfolio"
	"github.com/m04kA/SMC-SalonBooking/internal/service/portfolio/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
)

const uploadKind = "portfolio"

// Service сервис галереи работ салона
type Service struct {
	repo         PortfolioRepository
	storage      ObjectStorage
	metrics      MetricsCollector
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса портфолио
// collector может быть nil
func NewService(repo PortfolioRepository, storage ObjectStorage, collector MetricsCollector, logger Logger) *Service {
	return &Service{
		repo:         repo,
		storage:      storage,
		metrics:      collector,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List возвращает работы, новые первыми
// Пустая категория и "all" означают все категории
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error) {
	category := strings.ToLower(strings.TrimSpace(req.Category))
	if category == "" {
		category = domain.PortfolioCategoryAll
	}

	var filter *domain.PortfolioCategory
	if category != domain.PortfolioCategoryAll {
		c := domain.PortfolioCategory(category)
		if !c.IsValid() {
			s.logger.Warn("List: unknown category=%s", category)
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, category)
		}
		filter = &c
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for category=%s: %v", category, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d items for category=%s", len(items), category)
	return models.FromDomainItemList(items, category), nil
}

// Upload загружает изображение и сохраняет запись
// Ошибка загрузки прерывает операцию; если запись не сохранилась, объект удаляется
func (s *Service) Upload(ctx context.Context, req *models.UploadRequest) (*models.ItemResponse, error) {
	s.logger.Info("Upload: title=%q, category=%s, file=%s, size=%d", req.Title, req.Category, req.Filename, req.Size)

	title, category, err := validateUpload(req)
	if err != nil {
		s.logger.Warn("Upload: validation failed: %v", err)
		return nil, err
	}

	key := objectstorage.GenerateKey(domain.PortfolioPrefix, req.Filename, req.ContentType, s.timeProvider.Now())

	url, err := s.storage.Upload(ctx, key, req.Body, req.Size, req.ContentType)
	if err != nil {
		s.incUpload(metrics.ResultFailure)
		s.logger.Error("Upload: failed to upload key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	s.incUpload(metrics.ResultSuccess)

	item, err := s.repo.Create(ctx, &domain.PortfolioItem{
		URL:        url,
		StorageKey: key,
		Title:      title,
		Category:   category,
	})
	if err != nil {
		s.logger.Error("Upload: failed to save item key=%s: %v", key, err)
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Warn("Upload: failed to remove orphaned object key=%s: %v", key, delErr)
		}
		return nil, fmt.Errorf("%w: Upload - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upload: created item id=%d", item.ID)
	return models.FromDomainItem(item), nil
}

// Delete удаляет работу
// Ошибка удаления объекта только логируется, запись удаляется в любом случае
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: item id must be positive", ErrInvalidInput)
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, portfolioRepo.ErrItemNotFound) {
			s.logger.Warn("Delete: item id=%d not found", id)
			return ErrItemNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - get item: %v", ErrInternal, err)
	}

	key := item.StorageKey
	if key == "" {
		key = s.storage.KeyFromURL(item.URL)
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.Warn("Delete: failed to delete object key=%s: %v", key, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, portfolioRepo.ErrItemNotFound) {
			return ErrItemNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - delete item: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: removed item id=%d", id)
	return nil
}

func (s *Service) incUpload(result string) {
	if s.metrics != nil {
		s.metrics.IncUpload(uploadKind, result)
	}
}

func validateUpload(req *models.UploadRequest) (string, domain.PortfolioCategory, error) {
	if req.Body == nil {
		return "", "", fmt.Errorf("%w: file is required", ErrInvalidInput)
	}

	if !strings.HasPrefix(strings.ToLower(req.ContentType), "image/") {
		return "", "", fmt.Errorf("%w: file must be an image", ErrInvalidInput)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return "", "", fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(title) > domain.MaxPortfolioTitleLength {
		return "", "", fmt.Errorf("%w: title must be at most %d characters", ErrInvalidInput, domain.MaxPortfolioTitleLength)
	}

	category := domain.PortfolioCategory(strings.ToLower(strings.TrimSpace(req.Category)))
	if !category.IsValid() {
		return "", "", fmt.Errorf("%w: unknown category %q", ErrInvalidInput, req.Category)
	}

	return title, category, nil
}
