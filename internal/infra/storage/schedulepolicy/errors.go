package schedulepolicy

import "errors"

var (
	// ErrPolicyNotFound возвращается, когда у диетолога нет сохранённой политики
	ErrPolicyNotFound = errors.New("schedulepolicy.repository: policy not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedulepolicy.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedulepolicy.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedulepolicy.repository: failed to scan row")
)
