package measurements

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/NutriCare-BookingEngine/internal/domain"
	storage "github.com/m04kA/NutriCare-BookingEngine/internal/infra/storage/measurements"
)

// Service сервис для работы с показателями пациентов
type Service struct {
	repo   Repository
	logger Logger
}

// NewService создает новый экземпляр сервиса показателей
func NewService(repo Repository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Get возвращает показатель пациента по имени метрики
func (s *Service) Get(ctx context.Context, patientID int64, metric string) (*MeasurementResponse, error) {
	if err := validateKey(patientID, metric); err != nil {
		return nil, err
	}

	m, err := s.repo.Get(ctx, patientID, metric)
	if err != nil {
		if errors.Is(err, storage.ErrMeasurementNotFound) {
			return nil, fmt.Errorf("%w: patient=%d metric=%q", ErrMeasurementNotFound, patientID, metric)
		}
		s.logger.Error("Get: failed to get measurement patient=%d metric=%q: %v", patientID, metric, err)
		return nil, fmt.Errorf("%w: failed to get measurement: %v", ErrInternal, err)
	}

	return fromStorage(m), nil
}

// Put сохраняет показатель пациента, перезаписывая предыдущее значение
func (s *Service) Put(ctx context.Context, patientID int64, metric, value string) (*MeasurementResponse, error) {
	if err := validateKey(patientID, metric); err != nil {
		return nil, err
	}
	if len(value) > domain.MaxMeasurementValueLength {
		return nil, fmt.Errorf("%w: value exceeds %d characters", ErrInvalidInput, domain.MaxMeasurementValueLength)
	}

	m, err := s.repo.Put(ctx, patientID, metric, value)
	if err != nil {
		s.logger.Error("Put: failed to save measurement patient=%d metric=%q: %v", patientID, metric, err)
		return nil, fmt.Errorf("%w: failed to save measurement: %v", ErrInternal, err)
	}

	s.logger.Info("Put: measurement saved patient=%d metric=%q", patientID, metric)
	return fromStorage(m), nil
}

func validateKey(patientID int64, metric string) error {
	if patientID <= 0 {
		return fmt.Errorf("%w: patientID must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(metric) == "" {
		return fmt.Errorf("%w: metric must not be empty", ErrInvalidInput)
	}
	return nil
}
