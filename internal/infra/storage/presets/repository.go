package presets

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Repository репозиторий шаблонов времени для быстрого добавления слотов
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает шаблоны по возрастанию времени
func (r *Repository) List(ctx context.Context) ([]*domain.SlotPreset, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("time", "created_at").
		From("slot_presets").
		OrderBy("time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	presets := make([]*domain.SlotPreset, 0)
	for rows.Next() {
		var (
			preset    domain.SlotPreset
			createdAt sql.NullTime
		)
		if err := rows.Scan(&preset.Time, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		preset.CreatedAt = createdAt.Time
		presets = append(presets, &preset)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return presets, nil
}

// Replace заменяет все шаблоны переданным набором
// Вызывать внутри транзакции, иначе между удалением и вставкой список будет пуст
func (r *Repository) Replace(ctx context.Context, times []types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slot_presets").ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Replace - execute delete: %v", ErrExecQuery, err)
	}

	if len(times) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("slot_presets").Columns("time")
	for _, t := range times {
		insertBuilder = insertBuilder.Values(t)
	}

	query, args, err = insertBuilder.Suffix("ON CONFLICT (time) DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Replace - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
