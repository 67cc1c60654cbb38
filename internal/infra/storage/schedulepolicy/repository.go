package schedulepolicy

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/NutriCare-BookingEngine/internal/domain"
	"github.com/m04kA/NutriCare-BookingEngine/pkg/dbmetrics"
	"github.com/m04kA/NutriCare-BookingEngine/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий политик рабочих часов диетологов.
// Строка из БД проходит через доменный конструктор: битая политика
// всплывает как domain.ErrInvalidPolicy, а не молча подрезается.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория политик
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProvider получает политику рабочих часов диетолога
func (r *Repository) GetByProvider(ctx context.Context, providerID int64) (*domain.WorkingHoursPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"provider_id",
		"start_hour",
		"end_hour",
		"slot_minutes",
		"working_weekdays",
		"created_at",
		"updated_at",
	).
		From("provider_schedule_policies").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProvider - build select query: %v", ErrBuildQuery, err)
	}

	var (
		id                              int64
		startHour, endHour, slotMinutes int
		weekdaysMask                    int
		createdAt, updatedAt            sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&id,
		&startHour,
		&endHour,
		&slotMinutes,
		&weekdaysMask,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProvider - scan policy: %v", ErrScanRow, err)
	}

	policy, err := domain.NewWorkingHoursPolicy(id, startHour, endHour, slotMinutes, domain.WeekdayMask(weekdaysMask))
	if err != nil {
		return nil, err
	}
	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return policy, nil
}

// Upsert сохраняет политику диетолога (insert либо полная замена строки)
func (r *Repository) Upsert(ctx context.Context, policy *domain.WorkingHoursPolicy) (*domain.WorkingHoursPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("provider_schedule_policies").
		Columns(
			"provider_id",
			"start_hour",
			"end_hour",
			"slot_minutes",
			"working_weekdays",
		).
		Values(
			policy.ProviderID,
			policy.StartHour,
			policy.EndHour,
			policy.SlotMinutes,
			int(policy.Weekdays),
		).
		Suffix(`ON CONFLICT (provider_id) DO UPDATE SET
			start_hour = EXCLUDED.start_hour,
			end_hour = EXCLUDED.end_hour,
			slot_minutes = EXCLUDED.slot_minutes,
			working_weekdays = EXCLUDED.working_weekdays,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return policy, nil
}
