package update_blocked_dates

// UpdateBlockedDatesRequest HTTP запрос на полную замену списка дат
type UpdateBlockedDatesRequest struct {
	Dates []string `json:"dates"` // ["YYYY-MM-DD", ...]
}

// BlockedDatesResponse HTTP ответ с сохраненным списком дат
type BlockedDatesResponse struct {
	ProviderID int64    `json:"providerId"`
	Dates      []string `json:"dates"`
}
