package presets

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/presets/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Service сервис шаблонов времени
// Пока админ не сохранил свои шаблоны, используются значения из конфига
type Service struct {
	repo      PresetRepository
	txManager TransactionManager
	defaults  []types.TimeString
	logger    Logger
}

// NewService создает новый экземпляр сервиса шаблонов
// Некорректные значения в defaults пропускаются с предупреждением
func NewService(repo PresetRepository, txManager TransactionManager, defaults []string, logger Logger) *Service {
	normalized, err := normalize(defaults)
	if err != nil {
		logger.Warn("NewService: invalid default presets %v: %v", defaults, err)
		normalized = normalizeLenient(defaults)
	}

	return &Service{
		repo:      repo,
		txManager: txManager,
		defaults:  normalized,
		logger:    logger,
	}
}

// Times возвращает действующие шаблоны
func (s *Service) Times(ctx context.Context) ([]types.TimeString, error) {
	times, _, err := s.current(ctx)
	return times, err
}

// Get возвращает шаблоны для админки
func (s *Service) Get(ctx context.Context) (*models.PresetsResponse, error) {
	times, isDefault, err := s.current(ctx)
	if err != nil {
		s.logger.Error("Get: failed to load presets: %v", err)
		return nil, err
	}

	return toResponse(times, isDefault), nil
}

// Update заменяет шаблоны целиком одной транзакцией
// Пустой список возвращает к значениям из конфига
func (s *Service) Update(ctx context.Context, req *models.UpdatePresetsRequest) (*models.PresetsResponse, error) {
	s.logger.Info("Update: times=%v", req.Times)

	times, err := normalize(req.Times)
	if err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	if len(times) > domain.MaxPresets {
		s.logger.Warn("Update: %d presets exceed limit %d", len(times), domain.MaxPresets)
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManyPresets, len(times), domain.MaxPresets)
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.repo.Replace(txCtx, times)
	})
	if err != nil {
		s.logger.Error("Update: failed to replace presets: %v", err)
		return nil, fmt.Errorf("%w: Update - replace presets: %v", ErrInternal, err)
	}

	if len(times) == 0 {
		s.logger.Info("Update: presets cleared, falling back to defaults")
		return toResponse(s.defaults, true), nil
	}

	s.logger.Info("Update: saved %d presets", len(times))
	return toResponse(times, false), nil
}

func (s *Service) current(ctx context.Context) ([]types.TimeString, bool, error) {
	stored, err := s.repo.List(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("%w: load presets: %v", ErrInternal, err)
	}

	if len(stored) == 0 {
		return s.defaults, true, nil
	}

	times := make([]types.TimeString, 0, len(stored))
	for _, p := range stored {
		times = append(times, p.Time)
	}
	return times, false, nil
}

// normalize приводит время к HH:MM:SS, убирает дубли и сортирует
func normalize(raw []string) ([]types.TimeString, error) {
	seen := make(map[types.TimeString]struct{}, len(raw))
	result := make([]types.TimeString, 0, len(raw))

	for _, value := range raw {
		t, err := types.NewTimeStringFromString(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a valid time", ErrInvalidInput, value)
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].IsBefore(result[j]) })
	return result, nil
}

func normalizeLenient(raw []string) []types.TimeString {
	valid := make([]string, 0, len(raw))
	for _, value := range raw {
		if _, err := types.NewTimeStringFromString(value); err == nil {
			valid = append(valid, value)
		}
	}
	times, _ := normalize(valid)
	return times
}

func toResponse(times []types.TimeString, isDefault bool) *models.PresetsResponse {
	resp := &models.PresetsResponse{
		Times:        make([]string, 0, len(times)),
		DisplayTimes: make([]string, 0, len(times)),
		IsDefault:    isDefault,
	}
	for _, t := range times {
		resp.Times = append(resp.Times, t.String())
		resp.DisplayTimes = append(resp.DisplayTimes, t.Display12h())
	}
	return resp
}
