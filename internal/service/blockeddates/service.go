package blockeddates

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/NutriCare-BookingEngine/internal/domain"
)

// Service сервис для работы с заблокированными датами диетологов
type Service struct {
	repo         Repository
	txManager    TxManager
	orchestrator OrchestratorInvalidator
	logger       Logger
}

// NewService создает новый экземпляр сервиса заблокированных дат
func NewService(repo Repository, txManager TxManager, orchestrator OrchestratorInvalidator, logger Logger) *Service {
	return &Service{
		repo:         repo,
		txManager:    txManager,
		orchestrator: orchestrator,
		logger:       logger,
	}
}

// List возвращает заблокированные даты диетолога в формате YYYY-MM-DD
func (s *Service) List(ctx context.Context, providerID int64) ([]string, error) {
	dates, err := s.repo.ListByProvider(ctx, providerID)
	if err != nil {
		s.logger.Error("List: failed to list blocked dates for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: failed to list blocked dates: %v", ErrInternal, err)
	}
	return dates, nil
}

// Replace полностью заменяет список заблокированных дат диетолога.
// Старый список и новый пишутся в одной сериализуемой транзакции,
// чтобы читатели не видели частично заменённое состояние.
func (s *Service) Replace(ctx context.Context, providerID int64, dates []string) ([]string, error) {
	s.logger.Info("Replace: provider=%d dates=%d", providerID, len(dates))

	if providerID <= 0 {
		return nil, fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	normalized, err := normalizeDates(dates)
	if err != nil {
		s.logger.Warn("Replace: provider=%d invalid dates: %v", providerID, err)
		return nil, err
	}

	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		if err := s.repo.DeleteByProvider(ctx, providerID); err != nil {
			return fmt.Errorf("failed to delete blocked dates: %w", err)
		}
		if err := s.repo.AddMany(ctx, providerID, normalized); err != nil {
			return fmt.Errorf("failed to insert blocked dates: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Replace: transaction failed for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.orchestrator.Invalidate(providerID)
	s.logger.Info("Replace: blocked dates saved for provider=%d, orchestrator invalidated", providerID)

	return normalized, nil
}

// normalizeDates валидирует формат дат, убирает дубликаты и сортирует
func normalizeDates(dates []string) ([]string, error) {
	seen := make(map[string]struct{}, len(dates))
	normalized := make([]string, 0, len(dates))
	for _, d := range dates {
		if _, err := time.ParseInLocation(domain.DateFormat, d, time.Local); err != nil {
			return nil, fmt.Errorf("%w: date %q is not in YYYY-MM-DD format", ErrInvalidInput, d)
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		normalized = append(normalized, d)
	}
	sort.Strings(normalized)
	return normalized, nil
}
