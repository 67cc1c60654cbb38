package measurements

import (
	"context"

	storage "github.com/m04kA/NutriCare-BookingEngine/internal/infra/storage/measurements"
)

// Repository интерфейс репозитория показателей пациентов
type Repository interface {
	Get(ctx context.Context, patientID int64, metric string) (*storage.Measurement, error)
	Put(ctx context.Context, patientID int64, metric, value string) (*storage.Measurement, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
