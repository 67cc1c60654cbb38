package measurements

import (
	"time"

	storage "github.com/m04kA/NutriCare-BookingEngine/internal/infra/storage/measurements"
)

// MeasurementResponse ответ с показателем пациента
type MeasurementResponse struct {
	PatientID int64     `json:"patientId"`
	Metric    string    `json:"metric"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func fromStorage(m *storage.Measurement) *MeasurementResponse {
	return &MeasurementResponse{
		PatientID: m.PatientID,
		Metric:    m.Metric,
		Value:     m.Value,
		UpdatedAt: m.UpdatedAt,
	}
}
