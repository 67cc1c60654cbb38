package domain

import (
	"fmt"
	"time"
)

// WeekdayMask is a 7-bit set of working weekdays, Monday = bit 0
type WeekdayMask int

const (
	MaskMonday WeekdayMask = 1 << iota
	MaskTuesday
	MaskWednesday
	MaskThursday
	MaskFriday
	MaskSaturday
	MaskSunday
)

// maskAll все дни недели
const maskAll = MaskMonday | MaskTuesday | MaskWednesday | MaskThursday | MaskFriday | MaskSaturday | MaskSunday

// MaskForWeekday returns the bit for a time.Weekday
func MaskForWeekday(wd time.Weekday) WeekdayMask {
	switch wd {
	case time.Monday:
		return MaskMonday
	case time.Tuesday:
		return MaskTuesday
	case time.Wednesday:
		return MaskWednesday
	case time.Thursday:
		return MaskThursday
	case time.Friday:
		return MaskFriday
	case time.Saturday:
		return MaskSaturday
	default:
		return MaskSunday
	}
}

// Contains reports whether the weekday is part of the mask
func (m WeekdayMask) Contains(wd time.Weekday) bool {
	return m&MaskForWeekday(wd) != 0
}

// WorkingHoursPolicy is the immutable bookable-window configuration of a
// provider: working weekdays, daily window and slot duration.
// Constructed only through NewWorkingHoursPolicy; invalid values are
// rejected, never clamped.
type WorkingHoursPolicy struct {
	ProviderID  int64
	StartHour   int
	EndHour     int
	SlotMinutes int
	Weekdays    WeekdayMask

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewWorkingHoursPolicy validates and builds a policy
func NewWorkingHoursPolicy(providerID int64, startHour, endHour, slotMinutes int, weekdays WeekdayMask) (*WorkingHoursPolicy, error) {
	if startHour < MinHour || startHour > MaxHour {
		return nil, fmt.Errorf("%w: startHour %d is out of range [%d, %d]", ErrInvalidPolicy, startHour, MinHour, MaxHour)
	}
	if endHour < MinHour || endHour > MaxHour {
		return nil, fmt.Errorf("%w: endHour %d is out of range [%d, %d]", ErrInvalidPolicy, endHour, MinHour, MaxHour)
	}
	if startHour >= endHour {
		return nil, fmt.Errorf("%w: startHour %d must be before endHour %d", ErrInvalidPolicy, startHour, endHour)
	}
	if slotMinutes <= 0 {
		return nil, fmt.Errorf("%w: slotMinutes %d must be positive", ErrInvalidPolicy, slotMinutes)
	}
	if ((endHour-startHour)*60)%slotMinutes != 0 {
		return nil, fmt.Errorf("%w: slotMinutes %d does not evenly divide the %d-hour window",
			ErrInvalidPolicy, slotMinutes, endHour-startHour)
	}
	if weekdays < 0 || weekdays > maskAll {
		return nil, fmt.Errorf("%w: weekdays mask %d is out of range", ErrInvalidPolicy, int(weekdays))
	}

	return &WorkingHoursPolicy{
		ProviderID:  providerID,
		StartHour:   startHour,
		EndHour:     endHour,
		SlotMinutes: slotMinutes,
		Weekdays:    weekdays,
	}, nil
}

// ForProvider returns a copy of the policy bound to another provider.
// Used to stamp a shared fallback policy with a concrete provider id.
func (p *WorkingHoursPolicy) ForProvider(providerID int64) *WorkingHoursPolicy {
	cp := *p
	cp.ProviderID = providerID
	return &cp
}

// TotalSlotsPerDay returns the number of slots in one working day
func (p *WorkingHoursPolicy) TotalSlotsPerDay() int {
	return (p.EndHour - p.StartHour) * 60 / p.SlotMinutes
}

// IsWorkingWeekday reports whether the date falls on a working weekday
func (p *WorkingHoursPolicy) IsWorkingWeekday(date time.Time) bool {
	return p.Weekdays.Contains(date.Weekday())
}
