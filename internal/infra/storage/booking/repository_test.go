package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO bookings \(date,time,customer_name,contact_method,contact_detail,service,addons,inspiration_photo_url,estimated_total\) VALUES .* RETURNING id, created_at`).
		WithArgs("2025-01-10", "09:00:00", "Jane Doe", "instagram", "@jane_doe", "Classic Manicure",
			sqlmock.AnyArg(), nil, 60.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), now))

	booking, err := repo.Create(context.Background(), &domain.Booking{
		Date:           time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		Time:           "09:00:00",
		CustomerName:   "Jane Doe",
		ContactMethod:  domain.ContactInstagram,
		ContactDetail:  "@jane_doe",
		ServiceName:    "Classic Manicure",
		AddonNames:     []string{"French Tips", "Hand/Foot Massage"},
		EstimatedTotal: 60,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), booking.ID)
	assert.Equal(t, now, booking.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_Error(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO bookings`).WillReturnError(errors.New("relation does not exist"))

	_, err := repo.Create(context.Background(), &domain.Booking{Date: time.Now(), Time: "09:00:00"})
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newRepo(t)
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE id = \$1`).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(
			int64(11), date, "09:00:00", "Jane Doe", "phone", "(514)-123-1234",
			"Classic Manicure", "{\"French Tips\",\"Hand/Foot Massage\"}",
			"https://cdn.example.com/inspiration/1.jpg", "60.00", time.Now(),
		))

	booking, err := repo.GetByID(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, domain.ContactPhone, booking.ContactMethod)
	assert.Equal(t, []string{"French Tips", "Hand/Foot Massage"}, booking.AddonNames)
	assert.Equal(t, ptr.Ptr("https://cdn.example.com/inspiration/1.jpg"), booking.InspirationPhotoURL)
	assert.Equal(t, 60.0, booking.EstimatedTotal)
	assert.True(t, booking.HasPhoto())

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE id = \$1`).
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err = repo.GetByID(context.Background(), 12)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_List(t *testing.T) {
	repo, mock := newRepo(t)
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE date = \$1 ORDER BY created_at DESC, id DESC`).
		WithArgs("2025-01-10").
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(int64(2), date, "10:00:00", "B", "email", "b@c.de", "Gel Manicure", "{}", nil, "55.00", time.Now()).
			AddRow(int64(1), date, "09:00:00", "A", "email", "a@b.co", "Classic Manicure", "{}", nil, "35.00", time.Now()))

	bookings, err := repo.List(context.Background(), domain.BookingsFilter{Date: &date})
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, int64(2), bookings[0].ID)
	assert.Empty(t, bookings[0].AddonNames)
	assert.Nil(t, bookings[0].InspirationPhotoURL)
	require.NoError(t, mock.ExpectationsWereMet())
}
