package schedulepolicy

import (
	"context"

	"github.com/m04kA/NutriCare-BookingEngine/internal/domain"
)

// PolicyRepository интерфейс репозитория политик рабочих часов
type PolicyRepository interface {
	GetByProvider(ctx context.Context, providerID int64) (*domain.WorkingHoursPolicy, error)
	Upsert(ctx context.Context, policy *domain.WorkingHoursPolicy) (*domain.WorkingHoursPolicy, error)
}

// OrchestratorInvalidator сбрасывает оркестратор диетолога после смены политики
type OrchestratorInvalidator interface {
	Invalidate(providerID int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
