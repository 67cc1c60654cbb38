package measurements

import "errors"

var (
	// ErrMeasurementNotFound возвращается, когда показатель не найден
	ErrMeasurementNotFound = errors.New("measurements service: measurement not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("measurements service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("measurements service: internal error")
)
