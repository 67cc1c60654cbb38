package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeFormat формат времени HH:MM
const timeFormat = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOutOfRange возвращается, когда результат операции выходит за границы суток
	ErrTimeOutOfRange = errors.New("time is out of day range")
)

// TimeString represents a time of day in "HH:MM" format.
// Used instead of time.Time where only the wall-clock part matters.
type TimeString string

// NewTimeString creates a TimeString from the wall-clock part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// String returns the underlying "HH:MM" value
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero reports whether the value is empty
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate checks the "HH:MM" format
func (ts TimeString) Validate() error {
	if _, err := time.Parse(timeFormat, string(ts)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// minutes возвращает число минут с начала суток
func (ts TimeString) minutes() (int, error) {
	t, err := time.Parse(timeFormat, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AddMinutes returns a new TimeString shifted forward by m minutes.
// Returns ErrTimeOutOfRange when the result crosses midnight.
func (ts TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := ts.minutes()
	if err != nil {
		return "", err
	}
	total += m
	if total < 0 || total > 24*60 {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, ts, m)
	}
	// 24:00 нормализуем в конец суток для сравнения границ
	if total == 24*60 {
		return TimeString("24:00"), nil
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Value implements driver.Valuer for storing in TIME columns
func (ts TimeString) Value() (driver.Value, error) {
	if ts.IsZero() {
		return nil, nil
	}
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan implements sql.Scanner
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case string:
		if len(v) > 5 {
			v = v[:5]
		}
		*ts = TimeString(v)
		return nil
	case []byte:
		s := string(v)
		if len(s) > 5 {
			s = s[:5]
		}
		*ts = TimeString(s)
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
}
