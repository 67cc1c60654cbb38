package get_provider_policy

import (
	"context"

	"github.com/m04kA/NutriCare-BookingEngine/internal/service/schedulepolicy"
)

type PolicyService interface {
	Get(ctx context.Context, providerID int64) (*schedulepolicy.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
