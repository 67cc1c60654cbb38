package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/NutriCare-BookingEngine/internal/domain"
	"github.com/m04kA/NutriCare-BookingEngine/internal/orchestrator"
)

// UseCase use case для получения слотов и сводки доступности на дату
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

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: provider=%d, date=%s",
		req.ProviderID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем оркестратор диетолога
	orch, err := uc.registry.Get(ctx, req.ProviderID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get orchestrator for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Обновляем снапшот перед вычислением слотов
	if err := orch.Refresh(ctx); err != nil {
		if errors.Is(err, orchestrator.ErrNoCredential) {
			uc.logger.Warn("GetAvailability: no credential for provider=%d", req.ProviderID)
			return nil, ErrUnauthorized
		}
		uc.logger.Error("GetAvailability: refresh failed for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	// 4. Вычисляем слоты и сводку по свежему снапшоту
	slots := orch.ComputeSlots(req.Date)
	summary, err := orch.ComputeDayAvailability(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to compute day availability for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return buildResponse(req, slots, summary, orch.GetSnapshotState().Generation), nil
}

func buildResponse(req *Request, slots []domain.SlotStatus, summary domain.DayAvailabilitySummary, generation uint64) *Response {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		out = append(out, Slot{
			Start:    s.Start.String(),
			End:      s.End.String(),
			State:    string(s.State),
			Bookable: s.IsBookable(),
		})
	}

	return &Response{
		ProviderID: req.ProviderID,
		Date:       req.Date.Format(domain.DateFormat),
		Slots:      out,
		Summary: DaySummary{
			Date:          summary.Date.Format(domain.DateFormat),
			TotalSlots:    summary.TotalSlots,
			BookedSlots:   summary.BookedSlots,
			IsFullyBooked: summary.IsFullyBooked,
			IsPast:        summary.IsPast,
			IsSelectable:  summary.IsSelectable,
		},
		Generation: generation,
	}
}
