package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnauthorized возвращается, когда у запроса нет действующего токена
	ErrUnauthorized = errors.New("no valid credential")

	// ErrUpstreamUnavailable возвращается, когда снапшот не удалось обновить
	ErrUpstreamUnavailable = errors.New("appointment upstream unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
