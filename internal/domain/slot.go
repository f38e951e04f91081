package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// SlotStatus state of an availability slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotReserved  SlotStatus = "reserved" // slot was taken by a booking
)

// AvailabilitySlot a single bookable (date, time) pair published by the admin
type AvailabilitySlot struct {
	ID        int64
	Date      time.Time
	Time      types.TimeString
	Status    SlotStatus
	BookingID *int64 // set when the slot is reserved
	CreatedAt time.Time
}

// IsAvailable returns true if the slot can still be booked
func (s *AvailabilitySlot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

// SlotsFilter фильтр для выборки слотов
type SlotsFilter struct {
	From          *time.Time // включительно
	To            *time.Time // включительно
	AvailableOnly bool
}

// SlotPreset время, которое админ добавляет на день одной кнопкой
type SlotPreset struct {
	Time      types.TimeString
	CreatedAt time.Time
}
