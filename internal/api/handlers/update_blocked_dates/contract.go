package update_blocked_dates

import "context"

type BlockedDatesService interface {
	Replace(ctx context.Context, providerID int64, dates []string) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
