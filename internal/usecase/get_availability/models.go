package get_availability

import "time"

// Request входные данные запроса доступности на дату
type Request struct {
	ProviderID int64
	Date       time.Time
}

// Slot один слот рабочего дня диетолога
type Slot struct {
	Start    string `json:"start"` // "HH:MM"
	End      string `json:"end"`   // "HH:MM"
	State    string `json:"state"` // available | booked | past | outside_window
	Bookable bool   `json:"bookable"`
}

// DaySummary сводка доступности даты
type DaySummary struct {
	Date          string `json:"date"` // "YYYY-MM-DD"
	TotalSlots    int    `json:"totalSlots"`
	BookedSlots   int    `json:"bookedSlots"`
	IsFullyBooked bool   `json:"isFullyBooked"`
	IsPast        bool   `json:"isPast"`
	IsSelectable  bool   `json:"isSelectable"`
}

// Response слоты и сводка по дате
type Response struct {
	ProviderID int64      `json:"providerId"`
	Date       string     `json:"date"`
	Slots      []Slot     `json:"slots"`
	Summary    DaySummary `json:"summary"`
	Generation uint64     `json:"generation"`
}
