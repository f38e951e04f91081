package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/catalog"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/objectstorage"
	slotRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/availability"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

const uploadKind = "inspiration"

// UseCase use case отправки бронирования
// Шаги выполняются последовательно без общей транзакции:
// загрузка фото -> запись бронирования -> пометка слота -> уведомления
type UseCase struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	catalog      Catalog
	photos       PhotoStorage
	notifiers    []Notifier
	metrics      MetricsCollector
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// photos может быть nil - тогда фото не сохраняются
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	catalog Catalog,
	photos PhotoStorage,
	notifiers []Notifier,
	collector MetricsCollector,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		catalog:      catalog,
		photos:       photos,
		notifiers:    notifiers,
		metrics:      collector,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case отправки бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: service=%s, addons=%v, date=%s, time=%s, contact=%s, photo=%t",
		req.ServiceID, req.AddonIDs, req.Date.Format(domain.DateFormat), req.Time, req.ContactMethod, req.Photo != nil)

	resp, err := uc.execute(ctx, req)
	if err != nil {
		uc.incSubmitted(metrics.ResultFailure)
		return nil, err
	}

	uc.incSubmitted(metrics.ResultSuccess)
	return resp, nil
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не в прошлом (по часовому поясу салона)
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now.In(uc.location)) {
		uc.logger.Warn("SubmitBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: %s is in the past", ErrInvalidDate, req.Date.Format(domain.DateFormat))
	}

	// 3. Услуга и дополнения из каталога
	service, err := uc.catalog.Service(req.ServiceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			uc.logger.Warn("SubmitBooking: service id=%s not found", req.ServiceID)
			return nil, fmt.Errorf("%w: %q", ErrServiceNotFound, req.ServiceID)
		}
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	addons, err := uc.catalog.AddonsByIDs(req.AddonIDs)
	if err != nil {
		if errors.Is(err, catalog.ErrAddonNotFound) {
			uc.logger.Warn("SubmitBooking: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrAddonNotFound, err)
		}
		return nil, fmt.Errorf("%w: failed to get addons: %v", ErrInternal, err)
	}

	// 4. Предварительная проверка слота
	// Не защищает от гонки двух клиентов: между проверкой и пометкой слота проходят секунды
	slot, err := uc.slotRepo.GetByDateTime(ctx, req.Date, req.Time)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("SubmitBooking: no slot for date=%s time=%s", req.Date.Format(domain.DateFormat), req.Time)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("SubmitBooking: failed to check slot: %v", err)
		return nil, fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
	}
	if !slot.IsAvailable() {
		uc.logger.Warn("SubmitBooking: slot id=%d is already %s", slot.ID, slot.Status)
		return nil, ErrSlotNotAvailable
	}

	// 5. Фото-пример: ошибка загрузки не прерывает бронирование
	photoURL := uc.uploadPhoto(ctx, req.Photo, now)

	// 6. Сохраняем бронирование
	addonNames := make([]string, 0, len(addons))
	for _, a := range addons {
		addonNames = append(addonNames, a.Name)
	}

	booking, err := uc.bookingRepo.Create(ctx, &domain.Booking{
		Date:                req.Date,
		Time:                req.Time,
		CustomerName:        req.CustomerName,
		ContactMethod:       req.ContactMethod,
		ContactDetail:       req.ContactDetail,
		ServiceName:         service.Name,
		AddonNames:          addonNames,
		InspirationPhotoURL: photoURL,
		EstimatedTotal:      domain.EstimatedTotal(service, addons),
	})
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("SubmitBooking: created booking id=%d, total=%.2f", booking.ID, booking.EstimatedTotal)

	// Бронирование уже сохранено: дальнейшие шаги не должны обрываться отменой запроса
	detached := context.WithoutCancel(ctx)

	// 7. Помечаем слот занятым
	released := uc.releaseSlot(detached, booking)

	// 8. Уведомления
	uc.notify(detached, booking)

	return toResponse(booking, released), nil
}

func (uc *UseCase) uploadPhoto(ctx context.Context, photo *Photo, now time.Time) *string {
	if photo == nil || photo.Body == nil {
		return nil
	}

	if uc.photos == nil {
		uc.logger.Warn("SubmitBooking: photo storage is not configured, photo dropped")
		uc.incUpload(metrics.ResultSkipped)
		return nil
	}

	key := objectstorage.GenerateKey(domain.InspirationPrefix, photo.Filename, photo.ContentType, now)
	url, err := uc.photos.Upload(ctx, key, photo.Body, photo.Size, photo.ContentType)
	if err != nil {
		uc.logger.Warn("SubmitBooking: photo upload failed, continuing without photo: %v", err)
		uc.incUpload(metrics.ResultFailure)
		return nil
	}

	uc.incUpload(metrics.ResultSuccess)
	return ptr.Ptr(url)
}

// releaseSlot помечает слот занятым
// Ошибка или отсутствие свободного слота только логируются
func (uc *UseCase) releaseSlot(ctx context.Context, booking *domain.Booking) bool {
	reserved, err := uc.slotRepo.Reserve(ctx, booking.Date, booking.Time, booking.ID)
	if err != nil {
		uc.logger.Warn("SubmitBooking: failed to reserve slot for booking id=%d: %v", booking.ID, err)
		uc.incSlotRelease(metrics.ResultFailure)
		return false
	}

	if !reserved {
		uc.logger.Warn("SubmitBooking: no available slot to reserve for booking id=%d (date=%s, time=%s)",
			booking.ID, booking.Date.Format(domain.DateFormat), booking.Time)
		uc.incSlotRelease(metrics.ResultMissing)
		return false
	}

	uc.incSlotRelease(metrics.ResultReserved)
	return true
}

func (uc *UseCase) notify(ctx context.Context, booking *domain.Booking) {
	for _, n := range uc.notifiers {
		if err := n.NotifyNewBooking(ctx, booking); err != nil {
			uc.logger.Warn("SubmitBooking: %s notification failed for booking id=%d: %v", n.Name(), booking.ID, err)
			uc.incNotification(n.Name(), metrics.ResultFailure)
			continue
		}
		uc.incNotification(n.Name(), metrics.ResultSuccess)
	}
}

func (uc *UseCase) incSubmitted(result string) {
	if uc.metrics != nil {
		uc.metrics.IncBookingSubmitted(result)
	}
}

func (uc *UseCase) incSlotRelease(result string) {
	if uc.metrics != nil {
		uc.metrics.IncSlotRelease(result)
	}
}

func (uc *UseCase) incUpload(result string) {
	if uc.metrics != nil {
		uc.metrics.IncUpload(uploadKind, result)
	}
}

func (uc *UseCase) incNotification(channel, result string) {
	if uc.metrics != nil {
		uc.metrics.IncNotification(channel, result)
	}
}

func toResponse(b *domain.Booking, slotReleased bool) *Response {
	return &Response{
		ID:                  b.ID,
		Date:                b.Date,
		Time:                b.Time,
		CustomerName:        b.CustomerName,
		ContactMethod:       b.ContactMethod,
		ContactDetail:       b.ContactDetail,
		ServiceName:         b.ServiceName,
		AddonNames:          b.AddonNames,
		InspirationPhotoURL: b.InspirationPhotoURL,
		EstimatedTotal:      b.EstimatedTotal,
		CreatedAt:           b.CreatedAt,
		SlotReleased:        slotReleased,
	}
}
