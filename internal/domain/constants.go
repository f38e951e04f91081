package domain

import "time"

// Time format constants
const (
	DateFormat     = "2006-01-02" // YYYY-MM-DD
	LongDateFormat = "Monday, January 2, 2006"
)

// Business validation constants
const (
	MaxCustomerNameLength   = 100
	MaxContactDetailLength  = 100
	MaxPortfolioTitleLength = 120
	MaxPresets              = 24
)

// Object storage key prefixes
const (
	InspirationPrefix = "inspiration"
	PortfolioPrefix   = "portfolio"
)

// EventNewBooking тип события в уведомлении о новой записи
const EventNewBooking = "new_booking"

// SameDay сравнивает календарные даты без учета времени и часового пояса
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// TruncateToDay отбрасывает время, сохраняя календарную дату в UTC
// Колонки DATE читаются lib/pq как полночь UTC, поэтому даты храним так же
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate разбирает YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}
