package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/NutriCare-BookingEngine/internal/availability"
	"github.com/m04kA/NutriCare-BookingEngine/internal/domain"
	"github.com/m04kA/NutriCare-BookingEngine/internal/integrations/appointmentapi"
)

// Orchestrator координатор бронирования для одного диетолога.
//
// Снапшот - единственный разделяемый изменяемый ресурс экземпляра.
// Он создаётся пустым, целиком замещается при каждом принятом обновлении
// и никогда не дополняется частично и не мутируется оптимистично: отказ
// сервера не оставляет "фантомных" занятых слотов.
//
// Каждому исходящему обновлению присваивается монотонно растущее
// поколение; принимается только ответ последнего выданного поколения,
// устаревшие ответы отбрасываются. Отправка бронирования сериализована:
// одновременно не более одной на экземпляр.
type Orchestrator struct {
	providerID   int64
	policy       *domain.WorkingHoursPolicy
	client       AppointmentClient
	tokens       TokenSource
	blockedDates BlockedDatesSource
	timeProvider TimeProvider
	log          Logger

	mu          sync.Mutex
	state       State
	snapshot    []domain.Appointment
	refreshSeq  uint64 // последнее выданное поколение обновления
	acceptedGen uint64 // поколение принятого снапшота
	subscribers map[int64]Listener
	nextSubID   int64
}

// New создает оркестратор для указанного диетолога
func New(
	providerID int64,
	policy *domain.WorkingHoursPolicy,
	client AppointmentClient,
	tokens TokenSource,
	blockedDates BlockedDatesSource,
	log Logger,
) *Orchestrator {
	return &Orchestrator{
		providerID:   providerID,
		policy:       policy,
		client:       client,
		tokens:       tokens,
		blockedDates: blockedDates,
		timeProvider: &RealTimeProvider{},
		log:          log,
		state:        StateIdle,
		snapshot:     []domain.Appointment{},
		subscribers:  make(map[int64]Listener),
	}
}

// ProviderID возвращает ID диетолога, которым управляет оркестратор
func (o *Orchestrator) ProviderID() int64 {
	return o.providerID
}

// Policy возвращает политику рабочих часов оркестратора
func (o *Orchestrator) Policy() *domain.WorkingHoursPolicy {
	return o.policy
}

// Refresh запрашивает полный список записей и целиком замещает снапшот.
// Ответ принимается, только если его поколение всё ещё последнее
// выданное; устаревший ответ отбрасывается без ошибки.
func (o *Orchestrator) Refresh(ctx context.Context) error {
	token, ok := o.tokens.Token(ctx)
	if !ok {
		return ErrNoCredential
	}

	o.mu.Lock()
	o.refreshSeq++
	gen := o.refreshSeq
	o.mu.Unlock()

	records, err := o.client.List(ctx, token)
	if err != nil {
		o.log.Error("Refresh: provider=%d generation=%d list failed: %v", o.providerID, gen, err)
		return fmt.Errorf("%w: %v", ErrRefresh, err)
	}

	appointments, err := o.filterProvider(records)
	if err != nil {
		o.log.Error("Refresh: provider=%d generation=%d bad response: %v", o.providerID, gen, err)
		return fmt.Errorf("%w: %v", ErrRefresh, err)
	}

	o.mu.Lock()
	if gen != o.refreshSeq {
		latest := o.refreshSeq
		o.mu.Unlock()
		// внутренняя ситуация, наружу не отдаётся
		o.log.Debug("Refresh: provider=%d discarding stale response, generation=%d latest=%d",
			o.providerID, gen, latest)
		return nil
	}
	o.snapshot = appointments
	o.acceptedGen = gen
	state, listeners := o.stateAndListenersLocked()
	o.mu.Unlock()

	o.log.Info("Refresh: provider=%d generation=%d snapshot replaced, %d appointments",
		o.providerID, gen, len(appointments))
	notify(listeners, state)
	return nil
}

// SubmitBooking проводит отправку бронирования слота slotStartISO
// (наивное локальное время, формат 2006-01-02T15:04:05).
//
// Машина состояний: Idle -> Submitting -> Idle при любом исходе.
// Повторный вызов во время Submitting немедленно отклоняется как Busy,
// а не ставится в очередь.
func (o *Orchestrator) SubmitBooking(ctx context.Context, slotStartISO string) Result {
	o.mu.Lock()
	if o.state == StateSubmitting {
		o.mu.Unlock()
		return Fail(KindBusy, "booking submission already in flight")
	}
	o.state = StateSubmitting
	state, listeners := o.stateAndListenersLocked()
	o.mu.Unlock()
	notify(listeners, state)

	result := o.submit(ctx, slotStartISO)

	o.mu.Lock()
	o.state = StateIdle
	state, listeners = o.stateAndListenersLocked()
	o.mu.Unlock()
	notify(listeners, state)

	return result
}

func (o *Orchestrator) submit(ctx context.Context, slotStartISO string) Result {
	// 1. Локальные проверки - без сетевых вызовов
	slotStart, err := time.ParseInLocation(domain.DateTimeFormat, slotStartISO, time.Local)
	if err != nil {
		return Fail(KindValidation, fmt.Sprintf("invalid slot start %q, expected %s", slotStartISO, domain.DateTimeFormat))
	}

	now := o.timeProvider.Now()
	if !slotStart.After(now) {
		return Fail(KindValidation, "slot start is in the past")
	}

	if o.isSlotBookedLocally(slotStart) {
		// локальная предпроверка по снапшоту; арбитраж одновременных
		// бронирований остаётся за удалённым хранилищем
		return Fail(KindConflict, "slot is already booked")
	}

	// 2. Учётные данные от сессионного коллаборатора
	token, ok := o.tokens.Token(ctx)
	if !ok {
		return Fail(KindUnauthorized, "no session credential available")
	}

	// 3. Создание записи в удалённом хранилище
	created, err := o.client.Create(ctx, token, appointmentapi.CreateRequest{
		Dietician: o.providerID,
		DateTime:  slotStart.Format(domain.DateTimeFormat),
		IsActive:  true,
	})
	if err != nil {
		// снапшот не трогаем: неуспешная запись не делает слот занятым
		return o.mapCreateError(err)
	}

	o.log.Info("SubmitBooking: provider=%d created appointment id=%d at %s",
		o.providerID, created.ID, slotStartISO)

	// 4. Полное обновление снапшота; созданная запись не вставляется
	// локально - единственная гарантия согласованности это
	// подтверждённый round trip
	if err := o.Refresh(ctx); err != nil {
		o.log.Warn("SubmitBooking: provider=%d post-create refresh failed: %v", o.providerID, err)
	}

	return Ok()
}

// mapCreateError транслирует ошибки клиента в категории результата
func (o *Orchestrator) mapCreateError(err error) Result {
	switch {
	case errors.Is(err, appointmentapi.ErrConflict):
		return Fail(KindConflict, err.Error())
	case errors.Is(err, appointmentapi.ErrUnauthorized):
		return Fail(KindUnauthorized, err.Error())
	case errors.Is(err, appointmentapi.ErrServer), errors.Is(err, appointmentapi.ErrInvalidResponse):
		return Fail(KindServer, err.Error())
	default:
		return Fail(KindNetwork, err.Error())
	}
}

// isSlotBookedLocally проверяет занятость слота по текущему снапшоту
func (o *Orchestrator) isSlotBookedLocally(slotStart time.Time) bool {
	slotEnd := slotStart.Add(time.Duration(o.policy.SlotMinutes) * time.Minute)

	o.mu.Lock()
	defer o.mu.Unlock()
	for _, appt := range o.snapshot {
		if !appt.IsBlocking() {
			continue
		}
		if !appt.StartAt.Before(slotStart) && appt.StartAt.Before(slotEnd) {
			return true
		}
	}
	return false
}

// ComputeSlots вычисляет упорядоченный список слотов на дату по текущему
// снапшоту; результат не кэшируется
func (o *Orchestrator) ComputeSlots(date time.Time) []domain.SlotStatus {
	snapshot := o.snapshotCopy()
	return availability.ComputeSlots(date, o.policy, snapshot, o.timeProvider.Now())
}

// ComputeDayAvailability вычисляет сводку доступности даты с учётом
// внешнего списка заблокированных дат
func (o *Orchestrator) ComputeDayAvailability(ctx context.Context, date time.Time) (domain.DayAvailabilitySummary, error) {
	blocked, err := o.blockedDates.ListByProvider(ctx, o.providerID)
	if err != nil {
		return domain.DayAvailabilitySummary{}, err
	}

	blockedSet := make(map[string]struct{}, len(blocked))
	for _, d := range blocked {
		blockedSet[d] = struct{}{}
	}

	snapshot := o.snapshotCopy()
	return availability.DaySummary(date, o.policy, snapshot, o.timeProvider.Now(), blockedSet), nil
}

// Subscribe регистрирует подписчика; возвращает функцию отписки.
// Подписчики вызываются при каждом изменении снапшота или состояния,
// вне мьютекса оркестратора.
func (o *Orchestrator) Subscribe(fn Listener) func() {
	o.mu.Lock()
	id := o.nextSubID
	o.nextSubID++
	o.subscribers[id] = fn
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		delete(o.subscribers, id)
		o.mu.Unlock()
	}
}

// GetSnapshotState возвращает синхронную копию текущего состояния
func (o *Orchestrator) GetSnapshotState() SnapshotState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotStateLocked()
}

func (o *Orchestrator) snapshotStateLocked() SnapshotState {
	appointments := make([]domain.Appointment, len(o.snapshot))
	copy(appointments, o.snapshot)
	return SnapshotState{
		State:        o.state,
		Appointments: appointments,
		Generation:   o.acceptedGen,
	}
}

func (o *Orchestrator) stateAndListenersLocked() (SnapshotState, []Listener) {
	listeners := make([]Listener, 0, len(o.subscribers))
	for _, fn := range o.subscribers {
		listeners = append(listeners, fn)
	}
	return o.snapshotStateLocked(), listeners
}

func (o *Orchestrator) snapshotCopy() []domain.Appointment {
	o.mu.Lock()
	defer o.mu.Unlock()
	snapshot := make([]domain.Appointment, len(o.snapshot))
	copy(snapshot, o.snapshot)
	return snapshot
}

// filterProvider конвертирует ответ хранилища в доменные записи и
// отбирает записи своего диетолога (фильтрация на стороне клиента)
func (o *Orchestrator) filterProvider(records []appointmentapi.AppointmentRecord) ([]domain.Appointment, error) {
	appointments := make([]domain.Appointment, 0, len(records))
	for _, rec := range records {
		if rec.Dietician != o.providerID {
			continue
		}
		appt, err := rec.ToDomain()
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, appt)
	}
	return appointments, nil
}

func notify(listeners []Listener, state SnapshotState) {
	for _, fn := range listeners {
		fn(state)
	}
}
