package orchestrator

import "github.com/m04kA/NutriCare-BookingEngine/internal/domain"

// State состояние машины отправки бронирования
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
)

// FailureKind типизированная категория неуспеха поверхности бронирования
type FailureKind string

const (
	KindValidation   FailureKind = "validation"
	KindConflict     FailureKind = "conflict"
	KindUnauthorized FailureKind = "unauthorized"
	KindNetwork      FailureKind = "network"
	KindServer       FailureKind = "server"
	KindBusy         FailureKind = "busy"
)

// Result исход отправки бронирования: успех либо (kind, message).
// Результат - значение, а не паника/исключение: поток управления
// остаётся данными.
type Result struct {
	OK      bool
	Kind    FailureKind
	Message string
}

// Ok возвращает успешный результат
func Ok() Result {
	return Result{OK: true}
}

// Fail возвращает неуспешный результат указанной категории
func Fail(kind FailureKind, message string) Result {
	return Result{OK: false, Kind: kind, Message: message}
}

// SnapshotState синхронно читаемое состояние оркестратора
type SnapshotState struct {
	State        State
	Appointments []domain.Appointment
	Generation   uint64
}

// Listener подписчик на изменения снапшота или состояния
type Listener func(SnapshotState)
