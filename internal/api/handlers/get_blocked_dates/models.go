package get_blocked_dates

// BlockedDatesResponse HTTP ответ со списком заблокированных дат
type BlockedDatesResponse struct {
	ProviderID int64    `json:"providerId"`
	Dates      []string `json:"dates"` // ["YYYY-MM-DD", ...], отсортированы
}
