package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"date",
	"time",
	"customer_name",
	"contact_method",
	"contact_detail",
	"service",
	"addons",
	"inspiration_photo_url",
	"estimated_total",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	addons := booking.AddonNames
	if addons == nil {
		addons = []string{}
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"date",
			"time",
			"customer_name",
			"contact_method",
			"contact_detail",
			"service",
			"addons",
			"inspiration_photo_url",
			"estimated_total",
		).
		Values(
			booking.Date.Format(domain.DateFormat),
			booking.Time,
			booking.CustomerName,
			booking.ContactMethod,
			booking.ContactDetail,
			booking.ServiceName,
			pq.Array(addons),
			booking.InspirationPhotoURL,
			booking.EstimatedTotal,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.AddonNames = addons
	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования, сначала новые
// Если в фильтре указана дата - только записи на эту дату
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at DESC", "id DESC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": filter.Date.Format(domain.DateFormat)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking   domain.Booking
		addons    pq.StringArray
		photoURL  sql.NullString
		createdAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.Date,
		&booking.Time,
		&booking.CustomerName,
		&booking.ContactMethod,
		&booking.ContactDetail,
		&booking.ServiceName,
		&addons,
		&photoURL,
		&booking.EstimatedTotal,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Date = domain.TruncateToDay(booking.Date)
	booking.AddonNames = []string(addons)
	if booking.AddonNames == nil {
		booking.AddonNames = []string{}
	}
	if photoURL.Valid {
		url := photoURL.String
		booking.InspirationPhotoURL = &url
	}
	booking.CreatedAt = createdAt.Time

	return &booking, nil
}
