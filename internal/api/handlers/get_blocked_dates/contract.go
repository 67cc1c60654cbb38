package get_blocked_dates

import "context"

type BlockedDatesService interface {
	List(ctx context.Context, providerID int64) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
