package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

const (
	formPrefix = "wizard:"
	lockPrefix = "wizard_lock:"
)

// Store хранилище незавершенных форм бронирования
// Каждое сохранение продлевает TTL: форма живет ttl с последнего действия
type Store struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewStore(client redis.Cmdable, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Save сохраняет форму
func (s *Store) Save(ctx context.Context, form *domain.BookingForm) error {
	data, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal: %v", ErrMarshal, err)
	}

	if err := s.client.Set(ctx, formPrefix+form.SessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - set: %v", ErrRedis, err)
	}

	return nil
}

// Get возвращает форму по ID сессии
func (s *Store) Get(ctx context.Context, sessionID string) (*domain.BookingForm, error) {
	data, err := s.client.Get(ctx, formPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrFormNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - get: %v", ErrRedis, err)
	}

	var form domain.BookingForm
	if err := json.Unmarshal(data, &form); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal: %v", ErrMarshal, err)
	}

	return &form, nil
}

// Delete удаляет форму и блокировку отправки
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, formPrefix+sessionID, lockPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("%w: Delete - del: %v", ErrRedis, err)
	}
	return nil
}

// AcquireLock захватывает блокировку формы на время изменения или отправки
// false - форму уже держит другой запрос
func (s *Store) AcquireLock(ctx context.Context, sessionID string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, lockPrefix+sessionID, time.Now().Unix(), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("%w: AcquireLock - setnx: %v", ErrRedis, err)
	}
	return ok, nil
}

// ReleaseLock снимает блокировку формы
func (s *Store) ReleaseLock(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, lockPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("%w: ReleaseLock - del: %v", ErrRedis, err)
	}
	return nil
}
