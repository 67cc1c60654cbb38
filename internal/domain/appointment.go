package domain

import "time"

// Appointment represents an appointment record fetched from the remote
// appointment store.
//
// StartAt хранится как наивное локальное время диетолога - единственная
// временная зона системы. Смещения зон не переносятся и не нормализуются.
type Appointment struct {
	ID          int64
	PatientID   int64
	ProviderID  int64
	StartAt     time.Time
	IsActive    bool
	IsCancelled bool
}

// IsBlocking returns true if the appointment occupies its slot:
// active and not cancelled
func (a *Appointment) IsBlocking() bool {
	return a.IsActive && !a.IsCancelled
}

// DateKey returns the provider-local calendar date ("YYYY-MM-DD")
// the appointment falls on
func (a *Appointment) DateKey() string {
	return a.StartAt.Format(DateFormat)
}
