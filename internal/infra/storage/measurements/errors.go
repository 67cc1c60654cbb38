package measurements

import "errors"

var (
	// ErrMeasurementNotFound возвращается, когда показатель не найден
	ErrMeasurementNotFound = errors.New("measurements.repository: measurement not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("measurements.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("measurements.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("measurements.repository: failed to scan row")
)
