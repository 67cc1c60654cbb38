package blockeddates

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/NutriCare-BookingEngine/internal/domain"
	"github.com/m04kA/NutriCare-BookingEngine/pkg/dbmetrics"
	"github.com/m04kA/NutriCare-BookingEngine/pkg/psqlbuilder"
)

// Repository репозиторий заблокированных дат диетолога
// (праздники, закрытия). Даты отдаются строками YYYY-MM-DD.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заблокированных дат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByProvider возвращает все заблокированные даты диетолога
// в порядке возрастания
func (r *Repository) ListByProvider(ctx context.Context, providerID int64) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("blocked_date").
		From("provider_blocked_dates").
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("blocked_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]string, 0)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: ListByProvider - scan blocked_date: %v", ErrScanRow, err)
		}
		dates = append(dates, date.Format(domain.DateFormat))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// AddMany добавляет заблокированные даты диетолога; дубликаты игнорируются
func (r *Repository) AddMany(ctx context.Context, providerID int64, dates []string) error {
	if len(dates) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("provider_blocked_dates").
		Columns("provider_id", "blocked_date")
	for _, date := range dates {
		insertBuilder = insertBuilder.Values(providerID, date)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (provider_id, blocked_date) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddMany - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddMany - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteByProvider удаляет все заблокированные даты диетолога.
// Используется вместе с AddMany внутри транзакции для полной замены списка.
func (r *Repository) DeleteByProvider(ctx context.Context, providerID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("provider_blocked_dates").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByProvider - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByProvider - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
