package get_availability

import (
	"context"

	"github.com/m04kA/NutriCare-BookingEngine/internal/orchestrator"
)

// OrchestratorRegistry реестр оркестраторов по диетологам
type OrchestratorRegistry interface {
	Get(ctx context.Context, providerID int64) (*orchestrator.Orchestrator, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
