package domain

// Business validation constants
const (
	MinHour        = 0
	MaxHour        = 23
	MinSlotMinutes = 5
	MaxSlotMinutes = 480 // 8 hours

	MaxMeasurementValueLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// DateTimeFormat naive local date-time without a timezone offset,
	// as served by the remote appointment store
	DateTimeFormat = "2006-01-02T15:04:05"
)
