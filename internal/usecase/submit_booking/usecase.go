package submit_booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/NutriCare-BookingEngine/internal/orchestrator"
)

// UseCase use case для отправки бронирования слота
type UseCase struct {
	registry OrchestratorRegistry
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(registry OrchestratorRegistry, logger Logger) *UseCase {
	return &UseCase{
		registry: registry,
		logger:   logger,
	}
}

// Execute выполняет use case бронирования.
// Ошибка возвращается только при сбоях инфраструктуры; исход самого
// бронирования (успех или типизированный неуспех) приходит в Result.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (orchestrator.Result, error) {
	uc.logger.Info("SubmitBooking: provider=%d, slotStart=%s", req.ProviderID, req.SlotStart)

	// 1. Валидация входных данных
	if req.ProviderID <= 0 {
		return orchestrator.Result{}, fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.SlotStart) == "" {
		return orchestrator.Result{}, fmt.Errorf("%w: slotStart is required", ErrInvalidInput)
	}

	// 2. Получаем оркестратор диетолога
	orch, err := uc.registry.Get(ctx, req.ProviderID)
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to get orchestrator for provider=%d: %v", req.ProviderID, err)
		return orchestrator.Result{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Отправляем бронирование
	result := orch.SubmitBooking(ctx, req.SlotStart)
	if !result.OK {
		uc.logger.Warn("SubmitBooking: provider=%d slotStart=%s failed: kind=%s message=%s",
			req.ProviderID, req.SlotStart, result.Kind, result.Message)
	} else {
		uc.logger.Info("SubmitBooking: provider=%d slotStart=%s booked", req.ProviderID, req.SlotStart)
	}

	return result, nil
}
