package update_provider_policy

import (
	"context"

	"github.com/m04kA/NutriCare-BookingEngine/internal/service/schedulepolicy"
)

type PolicyService interface {
	Update(ctx context.Context, providerID int64, req *schedulepolicy.UpdatePolicyRequest) (*schedulepolicy.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
