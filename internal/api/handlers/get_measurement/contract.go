package get_measurement

import (
	"context"

	"github.com/m04kA/NutriCare-BookingEngine/internal/service/measurements"
)

type MeasurementsService interface {
	Get(ctx context.Context, patientID int64, metric string) (*measurements.MeasurementResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
