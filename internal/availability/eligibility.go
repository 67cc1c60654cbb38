package availability

import (
	"time"

	"github.com/m04kA/NutriCare-BookingEngine/internal/domain"
)

// ShouldDisableDate decides whether a calendar date is selectable at all.
// A date is disabled when any of the following holds:
//   - дата строго раньше сегодняшней;
//   - день недели не является рабочим по политике;
//   - все слоты дня заняты;
//   - дата входит во внешний список заблокированных дат
//     (праздники, закрытия провайдера).
func ShouldDisableDate(date time.Time, policy *domain.WorkingHoursPolicy, snapshot []domain.Appointment, now time.Time, blockedDates map[string]struct{}) bool {
	if IsDateInPast(date, now) {
		return true
	}
	if !policy.IsWorkingWeekday(date) {
		return true
	}
	if _, blocked := blockedDates[date.Format(domain.DateFormat)]; blocked {
		return true
	}
	return CountBookedSlots(date, policy, snapshot) >= policy.TotalSlotsPerDay()
}

// DaySummary builds the availability summary for one date from the same
// inputs ShouldDisableDate uses
func DaySummary(date time.Time, policy *domain.WorkingHoursPolicy, snapshot []domain.Appointment, now time.Time, blockedDates map[string]struct{}) domain.DayAvailabilitySummary {
	total := policy.TotalSlotsPerDay()
	booked := CountBookedSlots(date, policy, snapshot)

	return domain.DayAvailabilitySummary{
		Date:          date,
		TotalSlots:    total,
		BookedSlots:   booked,
		IsFullyBooked: booked >= total,
		IsPast:        IsDateInPast(date, now),
		IsSelectable:  !ShouldDisableDate(date, policy, snapshot, now, blockedDates),
	}
}
