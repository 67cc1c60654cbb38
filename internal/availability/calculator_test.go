package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NutriCare-BookingEngine/internal/domain"
)

// 2024-06-10 - понедельник
var monday = time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)

func weekdayPolicy(t *testing.T) *domain.WorkingHoursPolicy {
	t.Helper()
	policy, err := domain.NewWorkingHoursPolicy(1, 9, 17, 60,
		domain.MaskMonday|domain.MaskTuesday|domain.MaskWednesday|domain.MaskThursday|domain.MaskFriday)
	require.NoError(t, err)
	return policy
}

func appointmentAt(startAt time.Time) domain.Appointment {
	return domain.Appointment{
		ID:         100,
		PatientID:  7,
		ProviderID: 1,
		StartAt:    startAt,
		IsActive:   true,
	}
}

func TestComputeSlots_BookedAndAvailable(t *testing.T) {
	policy := weekdayPolicy(t)
	snapshot := []domain.Appointment{
		appointmentAt(monday.Add(10 * time.Hour)), // 10:00
	}
	now := monday.Add(8 * time.Hour) // 08:00, до начала рабочего дня

	slots := ComputeSlots(monday, policy, snapshot, now)
	require.Len(t, slots, 8)

	assert.Equal(t, "09:00", slots[0].Start.String())
	assert.Equal(t, "10:00", slots[0].End.String())
	assert.Equal(t, "16:00", slots[7].Start.String())
	assert.Equal(t, "17:00", slots[7].End.String())

	for i, slot := range slots {
		if i == 1 { // 10:00
			assert.Equal(t, domain.SlotBooked, slot.State)
			assert.False(t, slot.IsBookable())
		} else {
			assert.Equal(t, domain.SlotAvailable, slot.State, "slot %s", slot.Start)
			assert.True(t, slot.IsBookable())
		}
	}
}

func TestComputeSlots_PastSlots(t *testing.T) {
	policy := weekdayPolicy(t)
	now := monday.Add(11 * time.Hour) // 11:00

	slots := ComputeSlots(monday, policy, nil, now)
	require.Len(t, slots, 8)

	// 09:00 и 10:00 прошли; слот, начинающийся ровно сейчас, тоже прошёл
	assert.Equal(t, domain.SlotPast, slots[0].State)
	assert.Equal(t, domain.SlotPast, slots[1].State)
	assert.Equal(t, domain.SlotPast, slots[2].State)
	assert.Equal(t, domain.SlotAvailable, slots[3].State)
}

func TestComputeSlots_BookedWinsOverPast(t *testing.T) {
	policy := weekdayPolicy(t)
	snapshot := []domain.Appointment{
		appointmentAt(monday.Add(9 * time.Hour)),
	}
	now := monday.Add(12 * time.Hour)

	slots := ComputeSlots(monday, policy, snapshot, now)
	assert.Equal(t, domain.SlotBooked, slots[0].State)
}

func TestComputeSlots_NonWorkingWeekday(t *testing.T) {
	policy := weekdayPolicy(t)
	saturday := monday.AddDate(0, 0, 5)

	slots := ComputeSlots(saturday, policy, nil, monday)
	require.Len(t, slots, 8)
	for _, slot := range slots {
		assert.Equal(t, domain.SlotOutsideWindow, slot.State)
	}
}

func TestComputeSlots_CancelledDoesNotBlock(t *testing.T) {
	policy := weekdayPolicy(t)
	cancelled := appointmentAt(monday.Add(10 * time.Hour))
	cancelled.IsCancelled = true
	inactive := appointmentAt(monday.Add(11 * time.Hour))
	inactive.IsActive = false

	slots := ComputeSlots(monday, policy, []domain.Appointment{cancelled, inactive}, monday)
	assert.Equal(t, domain.SlotAvailable, slots[1].State)
	assert.Equal(t, domain.SlotAvailable, slots[2].State)
}

func TestComputeSlots_SubHourGridBlocksExactlyOneSlot(t *testing.T) {
	policy, err := domain.NewWorkingHoursPolicy(1, 9, 11, 30, domain.MaskMonday)
	require.NoError(t, err)

	// запись на 09:45 попадает в интервал [09:30, 10:00)
	snapshot := []domain.Appointment{
		appointmentAt(monday.Add(9*time.Hour + 45*time.Minute)),
	}

	slots := ComputeSlots(monday, policy, snapshot, monday)
	require.Len(t, slots, 4)
	assert.Equal(t, "10:00", slots[1].End.String())
	assert.Equal(t, domain.SlotAvailable, slots[0].State) // 09:00
	assert.Equal(t, domain.SlotBooked, slots[1].State)    // 09:30
	assert.Equal(t, domain.SlotAvailable, slots[2].State) // 10:00
	assert.Equal(t, domain.SlotAvailable, slots[3].State) // 10:30
}

func TestCountBookedSlots(t *testing.T) {
	policy := weekdayPolicy(t)
	snapshot := []domain.Appointment{
		appointmentAt(monday.Add(9 * time.Hour)),
		appointmentAt(monday.Add(14 * time.Hour)),
		appointmentAt(monday.AddDate(0, 0, 1).Add(10 * time.Hour)), // другая дата
	}

	assert.Equal(t, 2, CountBookedSlots(monday, policy, snapshot))
	assert.Equal(t, 0, CountBookedSlots(monday.AddDate(0, 0, 5), policy, snapshot))
}

func TestGroupByDate(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)
	snapshot := []domain.Appointment{
		appointmentAt(monday.Add(9 * time.Hour)),
		appointmentAt(monday.Add(10 * time.Hour)),
		appointmentAt(tuesday.Add(9 * time.Hour)),
	}

	grouped := GroupByDate(snapshot)
	require.Len(t, grouped, 2)
	assert.Len(t, grouped["2024-06-10"], 2)
	assert.Len(t, grouped["2024-06-11"], 1)
}

func TestIsDateInPast(t *testing.T) {
	now := monday.Add(15 * time.Hour)

	assert.True(t, IsDateInPast(monday.AddDate(0, 0, -1), now))
	// сегодняшний день не считается прошедшим, даже поздно вечером
	assert.False(t, IsDateInPast(monday, now))
	assert.False(t, IsDateInPast(monday.AddDate(0, 0, 1), now))
}
