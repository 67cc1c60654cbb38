package appointmentapi

import "errors"

var (
	// ErrUnauthorized возвращается при отказе удалённого хранилища в доступе (401/403)
	ErrUnauthorized = errors.New("appointmentapi client: unauthorized")

	// ErrConflict возвращается, когда хранилище отклонило создание записи
	// (слот занят или запрос отвергнут валидацией сервера)
	ErrConflict = errors.New("appointmentapi client: appointment conflict")

	// ErrServer возвращается при 5xx ответах хранилища
	ErrServer = errors.New("appointmentapi client: server error")

	// ErrNetwork возвращается при транспортных сбоях
	ErrNetwork = errors.New("appointmentapi client: network error")

	// ErrInvalidResponse возвращается при некорректном ответе хранилища
	ErrInvalidResponse = errors.New("appointmentapi client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("appointmentapi client: internal error")
)
