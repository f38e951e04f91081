package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/catalog"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	formStore "github.com/m04kA/SMC-SalonBooking/internal/infra/cache/wizard"
	slotRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/availability"
	"github.com/m04kA/SMC-SalonBooking/internal/service/wizard/models"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// TTL блокировок формы страхуют от зависания, если процесс упал, не сняв блокировку
const (
	submitLockTTL = 2 * time.Minute
	updateLockTTL = 10 * time.Second
)

// Service пошаговая форма бронирования
// Шаги: услуга -> дополнения -> дата и время -> контакты -> отправка
type Service struct {
	store        FormStore
	catalog      Catalog
	slots        SlotReader
	submitter    BookingSubmitter
	ttl          time.Duration
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса формы
// ttl - время жизни формы с последнего действия
func NewService(
	store FormStore,
	catalog Catalog,
	slots SlotReader,
	submitter BookingSubmitter,
	ttl time.Duration,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		store:        store,
		catalog:      catalog,
		slots:        slots,
		submitter:    submitter,
		ttl:          ttl,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Start открывает новую форму на первом шаге
func (s *Service) Start(ctx context.Context) (*models.FormResponse, error) {
	now := s.timeProvider.Now()
	form := &domain.BookingForm{
		SessionID: uuid.NewString(),
		Step:      domain.StepSelectService,
		AddonIDs:  []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Save(ctx, form); err != nil {
		s.logger.Error("Start: failed to save form: %v", err)
		return nil, fmt.Errorf("%w: Start - save form: %v", ErrInternal, err)
	}

	s.logger.Info("Start: booking session=%s opened", form.SessionID)
	return s.toResponse(form), nil
}

// Get возвращает состояние формы
func (s *Service) Get(ctx context.Context, sessionID string) (*models.FormResponse, error) {
	form, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(form), nil
}

// Cancel удаляет форму
func (s *Service) Cancel(ctx context.Context, sessionID string) error {
	if _, err := s.load(ctx, sessionID); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, sessionID); err != nil {
		s.logger.Error("Cancel: failed to delete session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: Cancel - delete form: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking session=%s abandoned", sessionID)
	return nil
}

// SelectService выбор услуги (шаг 1)
func (s *Service) SelectService(ctx context.Context, sessionID string, req *models.SelectServiceRequest) (*models.FormResponse, error) {
	return s.update(ctx, sessionID, "SelectService", func(form *domain.BookingForm) error {
		if form.Step != domain.StepSelectService {
			return fmt.Errorf("%w: service is chosen on step %d, current step is %d", ErrWrongStep, domain.StepSelectService, form.Step)
		}

		serviceID := strings.TrimSpace(req.ServiceID)
		if serviceID == "" {
			return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
		}

		if _, err := s.catalog.Service(serviceID); err != nil {
			if errors.Is(err, catalog.ErrServiceNotFound) {
				return fmt.Errorf("%w: %q", ErrServiceNotFound, serviceID)
			}
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		form.ServiceID = serviceID
		return nil
	})
}

// ToggleAddon включает или выключает дополнение (шаг 2)
func (s *Service) ToggleAddon(ctx context.Context, sessionID, addonID string) (*models.FormResponse, error) {
	return s.update(ctx, sessionID, "ToggleAddon", func(form *domain.BookingForm) error {
		if form.Step != domain.StepSelectAddons {
			return fmt.Errorf("%w: add-ons are chosen on step %d, current step is %d", ErrWrongStep, domain.StepSelectAddons, form.Step)
		}

		if _, err := s.catalog.Addon(addonID); err != nil {
			if errors.Is(err, catalog.ErrAddonNotFound) {
				return fmt.Errorf("%w: %q", ErrAddonNotFound, addonID)
			}
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		form.ToggleAddon(addonID)
		return nil
	})
}

// SelectDateTime выбор свободного слота (шаг 3)
func (s *Service) SelectDateTime(ctx context.Context, sessionID string, req *models.SelectDateTimeRequest) (*models.FormResponse, error) {
	return s.update(ctx, sessionID, "SelectDateTime", func(form *domain.BookingForm) error {
		if form.Step != domain.StepSelectDateTime {
			return fmt.Errorf("%w: date and time are chosen on step %d, current step is %d", ErrWrongStep, domain.StepSelectDateTime, form.Step)
		}

		date, err := domain.ParseDate(req.Date)
		if err != nil {
			return fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
		}

		t, err := types.NewTimeStringFromString(req.Time)
		if err != nil {
			return fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidInput)
		}

		today := domain.TruncateToDay(s.timeProvider.Now().In(s.location))
		if date.Before(today) {
			return fmt.Errorf("%w: %s is in the past", ErrInvalidInput, req.Date)
		}

		slot, err := s.slots.GetByDateTime(ctx, date, t)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotAvailable
			}
			return fmt.Errorf("%w: check slot: %v", ErrInternal, err)
		}
		if !slot.IsAvailable() {
			return ErrSlotNotAvailable
		}

		form.Date = &date
		form.Time = t
		return nil
	})
}

// SetDetails контактные данные (шаг 4 или после неудачной отправки)
// Неполные данные сохраняются, проверка выполняется при отправке
func (s *Service) SetDetails(ctx context.Context, sessionID string, req *models.SetDetailsRequest) (*models.FormResponse, error) {
	return s.update(ctx, sessionID, "SetDetails", func(form *domain.BookingForm) error {
		if form.Step != domain.StepEnterDetails && form.Step != domain.StepFailed {
			return fmt.Errorf("%w: details are entered on step %d, current step is %d", ErrWrongStep, domain.StepEnterDetails, form.Step)
		}

		method := domain.ContactMethod(strings.ToLower(strings.TrimSpace(req.ContactMethod)))
		if !method.IsValid() {
			return fmt.Errorf("%w: unknown contact method %q", ErrInvalidInput, req.ContactMethod)
		}

		form.Details = domain.ContactDetails{
			CustomerName:  strings.TrimSpace(req.CustomerName),
			ContactMethod: method,
			ContactDetail: strings.TrimSpace(req.ContactDetail),
		}
		return nil
	})
}

// Next переход на следующий шаг, если текущий заполнен
// С шага контактов дальше только отправка
func (s *Service) Next(ctx context.Context, sessionID string) (*models.FormResponse, error) {
	return s.update(ctx, sessionID, "Next", func(form *domain.BookingForm) error {
		switch form.Step {
		case domain.StepSelectService, domain.StepSelectAddons, domain.StepSelectDateTime:
		default:
			return fmt.Errorf("%w: next is not available on step %s", ErrWrongStep, form.Step)
		}

		if !form.CanProceed(form.Step) {
			return fmt.Errorf("%w: %s", ErrStepIncomplete, form.Step)
		}

		form.Step++
		return nil
	})
}

// Back возврат на предыдущий шаг без проверок
// На первом шаге ничего не меняет, после неудачной отправки возвращает к контактам
func (s *Service) Back(ctx context.Context, sessionID string) (*models.FormResponse, error) {
	return s.update(ctx, sessionID, "Back", func(form *domain.BookingForm) error {
		switch form.Step {
		case domain.StepSelectService:
		case domain.StepFailed:
			form.Step = domain.StepEnterDetails
		case domain.StepSubmitting:
			return ErrSubmitInProgress
		default:
			form.Step--
		}
		return nil
	})
}

// Submit отправляет заполненную форму
// Успех удаляет форму, ошибка переводит ее в состояние Failed с текстом ошибки
func (s *Service) Submit(ctx context.Context, sessionID string, photo *submit_booking.Photo) (*submit_booking.Response, error) {
	s.logger.Info("Submit: session=%s, photo=%t", sessionID, photo != nil)

	form, err := s.beginSubmit(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	resp, submitErr := s.submitter.Execute(ctx, &submit_booking.Request{
		ServiceID:     form.ServiceID,
		AddonIDs:      form.AddonIDs,
		Date:          *form.Date,
		Time:          form.Time,
		CustomerName:  form.Details.CustomerName,
		ContactMethod: form.Details.ContactMethod,
		ContactDetail: form.Details.ContactDetail,
		Photo:         photo,
	})

	// Запрос мог быть отменен клиентом, состояние формы все равно нужно зафиксировать
	detached := context.WithoutCancel(ctx)

	if submitErr != nil {
		s.failSubmit(detached, form, submitErr)
		return nil, submitErr
	}

	if err := s.store.Delete(detached, sessionID); err != nil {
		s.logger.Warn("Submit: booking id=%d created but session=%s was not removed: %v", resp.ID, sessionID, err)
	}

	s.logger.Info("Submit: session=%s completed with booking id=%d", sessionID, resp.ID)
	return resp, nil
}

// beginSubmit переводит форму в состояние Submitting под блокировкой
func (s *Service) beginSubmit(ctx context.Context, sessionID string) (*domain.BookingForm, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	locked, err := s.store.AcquireLock(ctx, sessionID, submitLockTTL)
	if err != nil {
		s.logger.Error("Submit: failed to acquire lock for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: acquire submit lock: %v", ErrInternal, err)
	}
	if !locked {
		s.logger.Warn("Submit: session=%s is locked by another request", sessionID)
		return nil, s.lockedError(ctx, sessionID)
	}

	form, err := s.load(ctx, sessionID)
	if err == nil {
		err = checkSubmittable(form)
	}
	if err == nil {
		form.Step = domain.StepSubmitting
		form.LastError = ""
		form.UpdatedAt = s.timeProvider.Now()
		if saveErr := s.store.Save(ctx, form); saveErr != nil {
			err = fmt.Errorf("%w: save form: %v", ErrInternal, saveErr)
		}
	}

	if err != nil {
		s.logger.Warn("Submit: session=%s cannot be submitted: %v", sessionID, err)
		if relErr := s.store.ReleaseLock(ctx, sessionID); relErr != nil {
			s.logger.Error("Submit: failed to release lock for session=%s: %v", sessionID, relErr)
		}
		return nil, err
	}

	return form, nil
}

func checkSubmittable(form *domain.BookingForm) error {
	switch form.Step {
	case domain.StepEnterDetails, domain.StepFailed:
	case domain.StepSubmitting:
		// Блокировка получена, значит предыдущая отправка оборвалась
	default:
		return fmt.Errorf("%w: submit is not available on step %s", ErrWrongStep, form.Step)
	}

	if !form.CanProceed(domain.StepEnterDetails) {
		return fmt.Errorf("%w: %s", ErrStepIncomplete, domain.StepEnterDetails)
	}

	if form.ServiceID == "" || form.Date == nil || form.Time.IsZero() {
		return fmt.Errorf("%w: service, date and time must be selected", ErrStepIncomplete)
	}

	return nil
}

func (s *Service) failSubmit(ctx context.Context, form *domain.BookingForm, cause error) {
	s.logger.Warn("Submit: session=%s failed: %v", form.SessionID, cause)

	form.Step = domain.StepFailed
	form.LastError = cause.Error()
	form.UpdatedAt = s.timeProvider.Now()

	if err := s.store.Save(ctx, form); err != nil {
		s.logger.Error("Submit: failed to save failed state for session=%s: %v", form.SessionID, err)
	}
	if err := s.store.ReleaseLock(ctx, form.SessionID); err != nil {
		s.logger.Error("Submit: failed to release lock for session=%s: %v", form.SessionID, err)
	}
}

// update загружает форму, применяет изменение и сохраняет ее
// Все под блокировкой формы: изменение не может перезаписать состояние Submitting
func (s *Service) update(ctx context.Context, sessionID, op string, apply func(form *domain.BookingForm) error) (*models.FormResponse, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	locked, err := s.store.AcquireLock(ctx, sessionID, updateLockTTL)
	if err != nil {
		s.logger.Error("%s: failed to lock session=%s: %v", op, sessionID, err)
		return nil, fmt.Errorf("%w: %s - acquire lock: %v", ErrInternal, op, err)
	}
	if !locked {
		s.logger.Warn("%s: session=%s is locked by another request", op, sessionID)
		return nil, s.lockedError(ctx, sessionID)
	}
	defer func() {
		if err := s.store.ReleaseLock(context.WithoutCancel(ctx), sessionID); err != nil {
			s.logger.Error("%s: failed to release lock for session=%s: %v", op, sessionID, err)
		}
	}()

	form, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := apply(form); err != nil {
		s.logger.Warn("%s: session=%s rejected: %v", op, sessionID, err)
		return nil, err
	}

	form.UpdatedAt = s.timeProvider.Now()
	if err := s.store.Save(ctx, form); err != nil {
		s.logger.Error("%s: failed to save session=%s: %v", op, sessionID, err)
		return nil, fmt.Errorf("%w: %s - save form: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: session=%s now on step %s", op, sessionID, form.Step)
	return s.toResponse(form), nil
}

// lockedError объясняет, кем занята форма: идущей отправкой или параллельным изменением
func (s *Service) lockedError(ctx context.Context, sessionID string) error {
	form, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	if form.Step == domain.StepSubmitting {
		return ErrSubmitInProgress
	}
	return ErrSessionBusy
}

func validateSessionID(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}
	return nil
}

func (s *Service) load(ctx context.Context, sessionID string) (*domain.BookingForm, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	form, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, formStore.ErrFormNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("load: failed to get session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: load form: %v", ErrInternal, err)
	}

	return form, nil
}

// toResponse разрешает выбранные услугу и дополнения по каталогу
// Пропавшие из каталога позиции не показываются
func (s *Service) toResponse(form *domain.BookingForm) *models.FormResponse {
	var service *domain.Service
	if form.ServiceID != "" {
		if svc, err := s.catalog.Service(form.ServiceID); err == nil {
			service = svc
		}
	}

	addons := make([]*domain.Addon, 0, len(form.AddonIDs))
	for _, id := range form.AddonIDs {
		if a, err := s.catalog.Addon(id); err == nil {
			addons = append(addons, a)
		}
	}

	return models.FromDomainForm(form, service, addons, s.ttl)
}
