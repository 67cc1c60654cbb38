package orchestrator

import (
	"context"
	"time"

	"github.com/m04kA/NutriCare-BookingEngine/internal/integrations/appointmentapi"
)

// AppointmentClient интерфейс клиента удалённого хранилища записей
type AppointmentClient interface {
	List(ctx context.Context, token string) ([]appointmentapi.AppointmentRecord, error)
	Create(ctx context.Context, token string, req appointmentapi.CreateRequest) (*appointmentapi.AppointmentRecord, error)
}

// TokenSource интерфейс внешнего сессионного коллаборатора.
// Отсутствие токена - локальный отказ, без сетевого вызова.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// BlockedDatesSource интерфейс внешнего списка заблокированных дат
// (праздники, закрытия провайдера); даты в формате YYYY-MM-DD
type BlockedDatesSource interface {
	ListByProvider(ctx context.Context, providerID int64) ([]string, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
