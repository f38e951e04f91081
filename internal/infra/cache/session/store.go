package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

const keyPrefix = "admin_session:"

// Store хранилище админских сессий в Redis, время жизни задается TTL ключа
type Store struct {
	client redis.Cmdable
}

func NewStore(client redis.Cmdable) *Store {
	return &Store{client: client}
}

// Save сохраняет сессию до s.ExpiresAt
func (st *Store) Save(ctx context.Context, s *domain.AdminSession) error {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("%w: Save - session %s already expired", ErrMarshal, s.ID)
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal: %v", ErrMarshal, err)
	}

	if err := st.client.Set(ctx, keyPrefix+s.ID, data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - set: %v", ErrRedis, err)
	}

	return nil
}

// Get возвращает сессию по ID
func (st *Store) Get(ctx context.Context, id string) (*domain.AdminSession, error) {
	data, err := st.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - get: %v", ErrRedis, err)
	}

	var s domain.AdminSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal: %v", ErrMarshal, err)
	}

	return &s, nil
}

// Delete удаляет сессию. Удаление несуществующей сессии не ошибка
func (st *Store) Delete(ctx context.Context, id string) error {
	if err := st.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%w: Delete - del: %v", ErrRedis, err)
	}
	return nil
}
