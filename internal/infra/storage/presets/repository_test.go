package presets

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT time, created_at FROM slot_presets ORDER BY time ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"time", "created_at"}).
			AddRow("09:00:00", time.Now()).
			AddRow(time.Date(0, 1, 1, 13, 30, 0, 0, time.UTC), time.Now()))

	presets, err := NewRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, presets, 2)
	assert.Equal(t, types.TimeString("09:00:00"), presets[0].Time)
	assert.Equal(t, types.TimeString("13:30:00"), presets[1].Time)
}

func TestRepository_Replace(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM slot_presets`).WillReturnResult(sqlmock.NewResult(0, 6))
	mock.ExpectExec(`INSERT INTO slot_presets \(time\) VALUES \(\$1\),\(\$2\) ON CONFLICT \(time\) DO NOTHING`).
		WithArgs("10:00:00", "12:00:00").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err = NewRepository(db).Replace(context.Background(), []types.TimeString{"10:00:00", "12:00:00"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Replace_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM slot_presets`).WillReturnResult(sqlmock.NewResult(0, 6))

	require.NoError(t, NewRepository(db).Replace(context.Background(), nil))
	require.NoError(t, mock.ExpectationsWereMet())
}
