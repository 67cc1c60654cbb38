package measurements

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/NutriCare-BookingEngine/pkg/dbmetrics"
	"github.com/m04kA/NutriCare-BookingEngine/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Measurement показатель пациента (вес, рост, BMI и т.п.)
// Простое key-value хранилище без какой-либо логики расписаний.
type Measurement struct {
	PatientID int64
	Metric    string
	Value     string
	UpdatedAt time.Time
}

// Repository репозиторий показателей пациентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория показателей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает показатель пациента по имени метрики
func (r *Repository) Get(ctx context.Context, patientID int64, metric string) (*Measurement, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"patient_id",
		"metric",
		"value",
		"updated_at",
	).
		From("patient_measurements").
		Where(squirrel.Eq{"patient_id": patientID, "metric": metric}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var m Measurement
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&m.PatientID,
		&m.Metric,
		&m.Value,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrMeasurementNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan measurement: %v", ErrScanRow, err)
	}

	m.UpdatedAt = updatedAt.Time
	return &m, nil
}

// Put сохраняет показатель пациента (upsert по паре patient_id + metric)
func (r *Repository) Put(ctx context.Context, patientID int64, metric, value string) (*Measurement, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("patient_measurements").
		Columns("patient_id", "metric", "value").
		Values(patientID, metric, value).
		Suffix(`ON CONFLICT (patient_id, metric) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Put - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Put - execute insert: %v", ErrExecQuery, err)
	}

	return &Measurement{
		PatientID: patientID,
		Metric:    metric,
		Value:     value,
		UpdatedAt: updatedAt.Time,
	}, nil
}
