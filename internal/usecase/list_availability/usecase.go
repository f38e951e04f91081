package list_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// UseCase use case для получения свободных слотов на сайте
type UseCase struct {
	slotRepo     SlotRepository
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, location *time.Location, logger Logger) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		slotRepo:     slotRepo,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute возвращает свободные слоты начиная с сегодняшнего дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	today := domain.TruncateToDay(uc.timeProvider.Now().In(uc.location))

	filter := domain.SlotsFilter{
		From:          &today,
		AvailableOnly: true,
	}

	if req.Date != nil {
		date := domain.TruncateToDay(*req.Date)
		if date.Before(today) {
			uc.logger.Info("ListAvailability: date %s is in the past, nothing to show", date.Format(domain.DateFormat))
			return &Response{Days: []Day{}}, nil
		}
		filter.From = &date
		filter.To = &date
	}

	slots, err := uc.slotRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("ListAvailability: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	days := groupByDate(slots)
	uc.logger.Info("ListAvailability: %d slots over %d days from %s", len(slots), len(days), filter.From.Format(domain.DateFormat))

	return &Response{
		Days:       days,
		TotalSlots: len(slots),
	}, nil
}
