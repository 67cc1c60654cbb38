package submit_booking

// Request входные данные запроса на бронирование слота
type Request struct {
	ProviderID int64
	SlotStart  string // "YYYY-MM-DDTHH:MM:SS", локальное время
}

// Response итог бронирования для успешного запроса
type Response struct {
	ProviderID int64  `json:"providerId"`
	SlotStart  string `json:"slotStart"`
	Status     string `json:"status"`
}
