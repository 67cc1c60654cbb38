package schedulepolicy

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/NutriCare-BookingEngine/internal/domain"
	policyRepo "github.com/m04kA/NutriCare-BookingEngine/internal/infra/storage/schedulepolicy"
)

// Service сервис для работы с политиками рабочих часов диетологов
type Service struct {
	repo         PolicyRepository
	orchestrator OrchestratorInvalidator
	defaults     *domain.WorkingHoursPolicy
	logger       Logger
}

// NewService создает новый экземпляр сервиса политик.
// defaults - политика по умолчанию из конфигурации, применяется к
// диетологам без сохранённой строки.
func NewService(repo PolicyRepository, orchestrator OrchestratorInvalidator, defaults *domain.WorkingHoursPolicy, logger Logger) *Service {
	return &Service{
		repo:         repo,
		orchestrator: orchestrator,
		defaults:     defaults,
		logger:       logger,
	}
}

// Get возвращает политику диетолога; при отсутствии сохранённой строки -
// политику по умолчанию
func (s *Service) Get(ctx context.Context, providerID int64) (*PolicyResponse, error) {
	policy, err := s.repo.GetByProvider(ctx, providerID)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			s.logger.Info("Get: using default policy for provider=%d", providerID)
			return FromDomainPolicy(s.defaults.ForProvider(providerID)), nil
		}
		s.logger.Error("Get: failed to get policy for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}

	return FromDomainPolicy(policy), nil
}

// Update полностью заменяет политику диетолога.
// Валидация выполняется доменным конструктором; после записи оркестратор
// диетолога сбрасывается, чтобы пересобраться со свежей политикой.
func (s *Service) Update(ctx context.Context, providerID int64, req *UpdatePolicyRequest) (*PolicyResponse, error) {
	s.logger.Info("Update: provider=%d startHour=%d endHour=%d slotMinutes=%d",
		providerID, req.StartHour, req.EndHour, req.SlotMinutes)

	if providerID <= 0 {
		return nil, fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}
	if req.SlotMinutes < domain.MinSlotMinutes || req.SlotMinutes > domain.MaxSlotMinutes {
		return nil, fmt.Errorf("%w: slotMinutes must be in [%d, %d]",
			ErrInvalidInput, domain.MinSlotMinutes, domain.MaxSlotMinutes)
	}

	mask, err := ParseWeekdays(req.WorkingWeekdays)
	if err != nil {
		s.logger.Warn("Update: provider=%d invalid weekdays: %v", providerID, err)
		return nil, err
	}

	policy, err := domain.NewWorkingHoursPolicy(providerID, req.StartHour, req.EndHour, req.SlotMinutes, mask)
	if err != nil {
		s.logger.Warn("Update: provider=%d policy validation failed: %v", providerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.repo.Upsert(ctx, policy)
	if err != nil {
		s.logger.Error("Update: failed to upsert policy for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: failed to save policy: %v", ErrInternal, err)
	}

	s.orchestrator.Invalidate(providerID)
	s.logger.Info("Update: policy saved for provider=%d, orchestrator invalidated", providerID)

	return FromDomainPolicy(saved), nil
}
