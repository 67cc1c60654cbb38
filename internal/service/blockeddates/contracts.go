package blockeddates

import "context"

// Repository интерфейс репозитория заблокированных дат
type Repository interface {
	ListByProvider(ctx context.Context, providerID int64) ([]string, error)
	AddMany(ctx context.Context, providerID int64, dates []string) error
	DeleteByProvider(ctx context.Context, providerID int64) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// OrchestratorInvalidator сбрасывает оркестратор диетолога после смены списка дат
type OrchestratorInvalidator interface {
	Invalidate(providerID int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
