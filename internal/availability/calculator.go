package availability

import (
	"time"

	"github.com/m04kA/NutriCare-BookingEngine/internal/domain"
	"github.com/m04kA/NutriCare-BookingEngine/pkg/types"
)

// Пакет availability - чистая функция от (policy, snapshot, now) к
// слотам и доступности дат. Без I/O, результат детерминирован.

// GroupByDate partitions a snapshot by provider-local calendar date
// ("YYYY-MM-DD"). Order within a group is not specified.
func GroupByDate(snapshot []domain.Appointment) map[string][]domain.Appointment {
	grouped := make(map[string][]domain.Appointment)
	for _, appt := range snapshot {
		key := appt.DateKey()
		grouped[key] = append(grouped[key], appt)
	}
	return grouped
}

// ComputeSlots produces the ordered slot listing for one date:
// TotalSlotsPerDay entries, SlotMinutes apart, from StartHour to EndHour.
//
// Классификация каждого слота, по порядку:
//  1. не рабочий день недели - весь день OutsideWindow;
//  2. Booked - активная неотменённая запись начинается внутри
//     [slotStart, slotStart+SlotMinutes);
//  3. Past - slotStart <= now (слот, начинающийся прямо сейчас,
//     считается прошедшим);
//  4. иначе Available.
func ComputeSlots(date time.Time, policy *domain.WorkingHoursPolicy, snapshot []domain.Appointment, now time.Time) []domain.SlotStatus {
	total := policy.TotalSlotsPerDay()
	slots := make([]domain.SlotStatus, 0, total)

	working := policy.IsWorkingWeekday(date)
	dayAppointments := blockingOnDate(date, snapshot)
	step := time.Duration(policy.SlotMinutes) * time.Minute

	slotStart := time.Date(date.Year(), date.Month(), date.Day(), policy.StartHour, 0, 0, 0, date.Location())
	for i := 0; i < total; i++ {
		state := classifySlot(slotStart, step, working, dayAppointments, now)
		start := types.NewTimeString(slotStart)
		// окно валидной политики не пересекает полночь
		end, _ := start.AddMinutes(policy.SlotMinutes)
		slots = append(slots, domain.SlotStatus{
			Date:  date,
			Start: start,
			End:   end,
			State: state,
		})
		slotStart = slotStart.Add(step)
	}

	return slots
}

// CountBookedSlots returns the number of Booked slots ComputeSlots would
// report for the date
func CountBookedSlots(date time.Time, policy *domain.WorkingHoursPolicy, snapshot []domain.Appointment) int {
	if !policy.IsWorkingWeekday(date) {
		return 0
	}

	dayAppointments := blockingOnDate(date, snapshot)
	if len(dayAppointments) == 0 {
		return 0
	}

	step := time.Duration(policy.SlotMinutes) * time.Minute
	slotStart := time.Date(date.Year(), date.Month(), date.Day(), policy.StartHour, 0, 0, 0, date.Location())

	count := 0
	for i := 0; i < policy.TotalSlotsPerDay(); i++ {
		if slotHasAppointment(slotStart, slotStart.Add(step), dayAppointments) {
			count++
		}
		slotStart = slotStart.Add(step)
	}
	return count
}

func classifySlot(slotStart time.Time, step time.Duration, working bool, dayAppointments []domain.Appointment, now time.Time) domain.SlotState {
	if !working {
		return domain.SlotOutsideWindow
	}
	if slotHasAppointment(slotStart, slotStart.Add(step), dayAppointments) {
		return domain.SlotBooked
	}
	if !slotStart.After(now) {
		return domain.SlotPast
	}
	return domain.SlotAvailable
}

// slotHasAppointment проверяет, начинается ли какая-либо запись внутри
// полуоткрытого интервала [slotStart, slotEnd).
//
// Исходная система сопоставляла запись и слот только по компоненту часа;
// здесь сопоставление ужесточено до точного попадания начала записи в
// интервал слота. На 60-минутной сетке поведение совпадает, на
// суб-часовой сетке запись блокирует ровно один слот.
func slotHasAppointment(slotStart, slotEnd time.Time, dayAppointments []domain.Appointment) bool {
	for _, appt := range dayAppointments {
		if !appt.StartAt.Before(slotStart) && appt.StartAt.Before(slotEnd) {
			return true
		}
	}
	return false
}

// blockingOnDate отбирает активные неотменённые записи на указанную дату
func blockingOnDate(date time.Time, snapshot []domain.Appointment) []domain.Appointment {
	key := date.Format(domain.DateFormat)

	var result []domain.Appointment
	for _, appt := range snapshot {
		if !appt.IsBlocking() {
			continue
		}
		if appt.DateKey() != key {
			continue
		}
		result = append(result, appt)
	}
	return result
}

// IsDateInPast проверяет, что дата строго раньше сегодняшней
// (сравниваются только календарные даты)
func IsDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
