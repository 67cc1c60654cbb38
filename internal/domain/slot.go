package domain

import (
	"time"

	"github.com/m04kA/NutriCare-BookingEngine/pkg/types"
)

// SlotState represents the state of a single bookable slot
type SlotState string

const (
	SlotAvailable     SlotState = "available"
	SlotBooked        SlotState = "booked"
	SlotPast          SlotState = "past"
	SlotOutsideWindow SlotState = "outside_window"
)

// SlotStatus describes one slot of a working day
type SlotStatus struct {
	Date  time.Time
	Start types.TimeString
	End   types.TimeString
	State SlotState
}

// IsBookable returns true if the slot can still be booked
func (s *SlotStatus) IsBookable() bool {
	return s.State == SlotAvailable
}

// DayAvailabilitySummary aggregates the availability of one calendar date
type DayAvailabilitySummary struct {
	Date          time.Time
	TotalSlots    int
	BookedSlots   int
	IsFullyBooked bool
	IsPast        bool
	IsSelectable  bool
}
