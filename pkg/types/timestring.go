package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidTimeFormat время не в формате HH:MM или HH:MM:SS
var ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM or HH:MM:SS")

const (
	layoutFull  = "15:04:05"
	layoutShort = "15:04"
	layout12h   = "3:04 PM"
)

// TimeString время суток без даты, всегда нормализовано к виду HH:MM:SS
// В БД хранится в колонке типа TIME
type TimeString string

// NewTimeStringFromString разбирает "HH:MM" или "HH:MM:SS" и нормализует к HH:MM:SS
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)

	for _, layout := range []string{layoutFull, layoutShort} {
		if len(s) != len(layout) {
			continue
		}
		t, err := time.Parse(layout, s)
		if err == nil {
			return TimeString(t.Format(layoutFull)), nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
}

// NewTimeString берет время суток из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(layoutFull))
}

func (ts TimeString) String() string {
	return string(ts)
}

// Display12h возвращает время в 12-часовом формате, например "9:00 AM"
func (ts TimeString) Display12h() string {
	t, err := ts.parse()
	if err != nil {
		return string(ts)
	}
	return t.Format(layout12h)
}

// IsZero сообщает, что время не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет, что строка - корректное нормализованное время
func (ts TimeString) Validate() error {
	if _, err := ts.parse(); err != nil {
		return err
	}
	return nil
}

// IsBefore строго раньше other
// Сравнение строковое: HH:MM:SS упорядочен лексикографически
func (ts TimeString) IsBefore(other TimeString) bool {
	return strings.Compare(string(ts), string(other)) < 0
}

func (ts TimeString) parse() (time.Time, error) {
	t, err := time.Parse(layoutFull, string(ts))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(ts))
	}
	return t, nil
}

// Scan реализует sql.Scanner
// lib/pq отдает TIME как time.Time (0000-01-01) или как строку, в зависимости от версии
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	case []byte:
		return ts.scanString(string(v))
	case string:
		return ts.scanString(v)
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}

func (ts *TimeString) scanString(s string) error {
	// TIME может прийти с дробными секундами: 09:00:00.000000
	if idx := strings.IndexByte(s, '.'); idx > 0 {
		s = s[:idx]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// Value реализует driver.Valuer
func (ts TimeString) Value() (driver.Value, error) {
	if ts.IsZero() {
		return nil, nil
	}
	return string(ts), nil
}
