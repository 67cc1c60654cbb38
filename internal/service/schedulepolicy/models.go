package schedulepolicy

import (
	"fmt"
	"time"

	"github.com/m04kA/NutriCare-BookingEngine/internal/domain"
	"github.com/m04kA/NutriCare-BookingEngine/pkg/ptr"
)

// UpdatePolicyRequest запрос на полную замену политики диетолога
type UpdatePolicyRequest struct {
	StartHour       int      `json:"startHour"`
	EndHour         int      `json:"endHour"`
	SlotMinutes     int      `json:"slotMinutes"`
	WorkingWeekdays []string `json:"workingWeekdays"` // ["monday", ...]
}

// PolicyResponse ответ с политикой рабочих часов
type PolicyResponse struct {
	ProviderID       int64      `json:"providerId"`
	StartHour        int        `json:"startHour"`
	EndHour          int        `json:"endHour"`
	SlotMinutes      int        `json:"slotMinutes"`
	TotalSlotsPerDay int        `json:"totalSlotsPerDay"`
	WorkingWeekdays  []string   `json:"workingWeekdays"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

// weekdayOrder порядок дней в ответах: понедельник - первый
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
	time.Sunday:    "sunday",
}

// ParseWeekdays конвертирует список имён дней недели в маску
func ParseWeekdays(names []string) (domain.WeekdayMask, error) {
	byName := make(map[string]time.Weekday, len(weekdayNames))
	for wd, name := range weekdayNames {
		byName[name] = wd
	}

	var mask domain.WeekdayMask
	for _, name := range names {
		wd, ok := byName[name]
		if !ok {
			return 0, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, name)
		}
		mask |= domain.MaskForWeekday(wd)
	}
	return mask, nil
}

// FormatWeekdays конвертирует маску в упорядоченный список имён дней
func FormatWeekdays(mask domain.WeekdayMask) []string {
	names := make([]string, 0, len(weekdayOrder))
	for _, wd := range weekdayOrder {
		if mask.Contains(wd) {
			names = append(names, weekdayNames[wd])
		}
	}
	return names
}

// FromDomainPolicy конвертирует доменную политику в DTO
func FromDomainPolicy(p *domain.WorkingHoursPolicy) *PolicyResponse {
	resp := &PolicyResponse{
		ProviderID:       p.ProviderID,
		StartHour:        p.StartHour,
		EndHour:          p.EndHour,
		SlotMinutes:      p.SlotMinutes,
		TotalSlotsPerDay: p.TotalSlotsPerDay(),
		WorkingWeekdays:  FormatWeekdays(p.Weekdays),
	}
	if !p.UpdatedAt.IsZero() {
		resp.UpdatedAt = ptr.Ptr(p.UpdatedAt)
	}
	return resp
}
