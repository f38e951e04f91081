package list_availability

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Request модель запроса свободных слотов
type Request struct {
	Date *time.Time // Только эта дата (опционально), иначе все дни начиная с сегодня
}

// Response свободные слоты, сгруппированные по дням
type Response struct {
	Days       []Day
	TotalSlots int
}

// Day день с хотя бы одним свободным слотом
type Day struct {
	Date        time.Time // Дата (без времени)
	DisplayDate string    // "Friday, January 10, 2025"
	Slots       []Slot    // По возрастанию времени
}

// Slot свободный слот
type Slot struct {
	ID          int64
	Time        types.TimeString // "09:00:00"
	DisplayTime string           // "9:00 AM"
}
