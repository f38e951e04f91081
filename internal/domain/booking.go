package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Booking represents a confirmed customer booking.
// Bookings are created once on submit and are never mutated or deleted.
type Booking struct {
	ID            int64
	Date          time.Time
	Time          types.TimeString
	CustomerName  string
	ContactMethod ContactMethod
	ContactDetail string

	// Denormalized catalog data: names are stored, not ids
	ServiceName string
	AddonNames  []string

	InspirationPhotoURL *string
	EstimatedTotal      float64

	CreatedAt time.Time
}

// HasPhoto returns true if an inspiration photo was attached
func (b *Booking) HasPhoto() bool {
	return b.InspirationPhotoURL != nil && *b.InspirationPhotoURL != ""
}

// BookingsFilter фильтр для админского списка бронирований
type BookingsFilter struct {
	Date *time.Time // nil - за все даты
}
