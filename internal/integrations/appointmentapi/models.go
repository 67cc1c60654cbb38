package appointmentapi

import (
	"fmt"
	"time"

	"github.com/m04kA/NutriCare-BookingEngine/internal/domain"
)

// AppointmentRecord модель записи на приём из удалённого хранилища
type AppointmentRecord struct {
	ID          int64  `json:"id"`
	Patient     int64  `json:"patient"`
	Dietician   int64  `json:"dietician"`
	DateTime    string `json:"date_time"` // наивное локальное время, без смещения зоны
	IsActive    bool   `json:"is_active"`
	IsCancelled bool   `json:"is_cancelled"`
}

// CreateRequest тело запроса на создание записи
type CreateRequest struct {
	Dietician int64  `json:"dietician"`
	DateTime  string `json:"date_time"`
	IsActive  bool   `json:"is_active"`
}

// ErrorResponse модель ошибки удалённого хранилища
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ToDomain converts a record to the domain model.
// DateTime is parsed in the process-local zone: the engine assumes a
// single provider timezone, so local wall-clock time is authoritative.
func (r *AppointmentRecord) ToDomain() (domain.Appointment, error) {
	startAt, err := time.ParseInLocation(domain.DateTimeFormat, r.DateTime, time.Local)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("%w: bad date_time %q: %v", ErrInvalidResponse, r.DateTime, err)
	}

	return domain.Appointment{
		ID:          r.ID,
		PatientID:   r.Patient,
		ProviderID:  r.Dietician,
		StartAt:     startAt,
		IsActive:    r.IsActive,
		IsCancelled: r.IsCancelled,
	}, nil
}
