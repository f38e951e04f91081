package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	slotRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/availability"
	"github.com/m04kA/SMC-SalonBooking/internal/service/availability/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Service сервис управления слотами доступности (админка)
type Service struct {
	slotRepo     SlotRepository
	presets      PresetProvider
	txManager    TransactionManager
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса слотов
// location - часовой пояс салона, в нем определяется "сегодня"
func NewService(
	slotRepo SlotRepository,
	presets PresetProvider,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		slotRepo:     slotRepo,
		presets:      presets,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

func (s *Service) today() time.Time {
	return domain.TruncateToDay(s.timeProvider.Now().In(s.location))
}

// AddSlot открывает слот на дату и время
// Повторное добавление того же слота ничего не меняет и возвращает существующий слот
func (s *Service) AddSlot(ctx context.Context, req *models.AddSlotRequest) (*models.AddSlotResponse, error) {
	s.logger.Info("AddSlot: date=%s, time=%s", req.Date, req.Time)

	date, err := parseDate("date", req.Date)
	if err != nil {
		s.logger.Warn("AddSlot: validation failed: %v", err)
		return nil, err
	}

	t, err := parseTime(req.Time)
	if err != nil {
		s.logger.Warn("AddSlot: validation failed: %v", err)
		return nil, err
	}

	if err := validateNotPast(date, s.today()); err != nil {
		s.logger.Warn("AddSlot: %v", err)
		return nil, err
	}

	slot, created, err := s.addOne(ctx, date, t)
	if err != nil {
		s.logger.Error("AddSlot: failed to add slot date=%s time=%s: %v", req.Date, t, err)
		return nil, err
	}

	if created {
		s.logger.Info("AddSlot: created slot id=%d", slot.ID)
	} else {
		s.logger.Info("AddSlot: slot already exists id=%d", slot.ID)
	}

	return &models.AddSlotResponse{
		Slot:    *models.FromDomainSlot(slot),
		Created: created,
	}, nil
}

// AddPresetSlots открывает на дату все шаблонные слоты одной транзакцией
// Уже существующие слоты пропускаются
func (s *Service) AddPresetSlots(ctx context.Context, dateStr string) (*models.AddPresetSlotsResponse, error) {
	s.logger.Info("AddPresetSlots: date=%s", dateStr)

	date, err := parseDate("date", dateStr)
	if err != nil {
		s.logger.Warn("AddPresetSlots: validation failed: %v", err)
		return nil, err
	}

	if err := validateNotPast(date, s.today()); err != nil {
		s.logger.Warn("AddPresetSlots: %v", err)
		return nil, err
	}

	times, err := s.presets.Times(ctx)
	if err != nil {
		s.logger.Error("AddPresetSlots: failed to load presets: %v", err)
		return nil, fmt.Errorf("%w: AddPresetSlots - load presets: %v", ErrInternal, err)
	}

	resp := &models.AddPresetSlotsResponse{
		Date:    date.Format(domain.DateFormat),
		Added:   make([]models.SlotResponse, 0, len(times)),
		Skipped: make([]string, 0),
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, t := range times {
			slot, created, err := s.addOne(txCtx, date, t)
			if err != nil {
				return err
			}
			if created {
				resp.Added = append(resp.Added, *models.FromDomainSlot(slot))
			} else {
				resp.Skipped = append(resp.Skipped, t.String())
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("AddPresetSlots: failed for date=%s: %v", dateStr, err)
		return nil, err
	}

	s.logger.Info("AddPresetSlots: date=%s, added=%d, skipped=%d", dateStr, len(resp.Added), len(resp.Skipped))
	return resp, nil
}

// addOne предварительная проверка + вставка с ON CONFLICT
// Проверка снимает лишнюю вставку, уникальный ключ закрывает гонку двух админов
func (s *Service) addOne(ctx context.Context, date time.Time, t types.TimeString) (*domain.AvailabilitySlot, bool, error) {
	existing, err := s.slotRepo.GetByDateTime(ctx, date, t)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, slotRepo.ErrSlotNotFound) {
		return nil, false, fmt.Errorf("%w: check existing slot: %v", ErrInternal, err)
	}

	slot, err := s.slotRepo.Create(ctx, &domain.AvailabilitySlot{Date: date, Time: t, Status: domain.SlotAvailable})
	if err == nil {
		return slot, true, nil
	}
	if !errors.Is(err, slotRepo.ErrSlotAlreadyExists) {
		return nil, false, fmt.Errorf("%w: create slot: %v", ErrInternal, err)
	}

	// Слот вставили параллельно между проверкой и вставкой
	existing, err = s.slotRepo.GetByDateTime(ctx, date, t)
	if err != nil {
		return nil, false, fmt.Errorf("%w: reload concurrently created slot: %v", ErrInternal, err)
	}
	return existing, false, nil
}

// RemoveSlot удаляет слот по ID
func (s *Service) RemoveSlot(ctx context.Context, id int64) error {
	s.logger.Info("RemoveSlot: id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: slot id must be positive", ErrInvalidInput)
	}

	if err := s.slotRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("RemoveSlot: slot id=%d not found", id)
			return ErrSlotNotFound
		}
		s.logger.Error("RemoveSlot: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: RemoveSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveSlot: removed slot id=%d", id)
	return nil
}

// RemoveSlotsForDate удаляет все слоты на дату (включая занятые)
func (s *Service) RemoveSlotsForDate(ctx context.Context, dateStr string) (*models.DeleteSlotsResponse, error) {
	s.logger.Info("RemoveSlotsForDate: date=%s", dateStr)

	date, err := parseDate("date", dateStr)
	if err != nil {
		s.logger.Warn("RemoveSlotsForDate: validation failed: %v", err)
		return nil, err
	}

	deleted, err := s.slotRepo.DeleteByDate(ctx, date)
	if err != nil {
		s.logger.Error("RemoveSlotsForDate: repository error for date=%s: %v", dateStr, err)
		return nil, fmt.Errorf("%w: RemoveSlotsForDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveSlotsForDate: removed %d slots for date=%s", deleted, dateStr)
	return &models.DeleteSlotsResponse{
		Date:    date.Format(domain.DateFormat),
		Deleted: deleted,
	}, nil
}

// ListSlots возвращает слоты в обоих статусах за период
// Без from - начиная с сегодняшнего дня
func (s *Service) ListSlots(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	filter := domain.SlotsFilter{}

	if req.From != nil && *req.From != "" {
		from, err := parseDate("from", *req.From)
		if err != nil {
			return nil, err
		}
		filter.From = &from
	} else {
		today := s.today()
		filter.From = &today
	}

	if req.To != nil && *req.To != "" {
		to, err := parseDate("to", *req.To)
		if err != nil {
			return nil, err
		}
		if to.Before(*filter.From) {
			return nil, fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
		}
		filter.To = &to
	}

	slots, err := s.slotRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListSlots: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSlots - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListSlots: fetched %d slots", len(slots))
	return models.FromDomainSlotList(slots), nil
}
