package submit_booking

import (
	"context"

	"github.com/m04kA/NutriCare-BookingEngine/internal/orchestrator"
	submitBooking "github.com/m04kA/NutriCare-BookingEngine/internal/usecase/submit_booking"
)

type SubmitBookingUseCase interface {
	Execute(ctx context.Context, req *submitBooking.Request) (orchestrator.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
