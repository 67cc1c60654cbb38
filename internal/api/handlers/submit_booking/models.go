package submit_booking

import (
	submitBooking "github.com/m04kA/NutriCare-BookingEngine/internal/usecase/submit_booking"
)

// SubmitBookingRequest HTTP запрос на бронирование слота
type SubmitBookingRequest struct {
	ProviderID int64  `json:"providerId"`
	SlotStart  string `json:"slotStart"` // "YYYY-MM-DDTHH:MM:SS"
}

// SubmitBookingResponse HTTP ответ успешного бронирования
type SubmitBookingResponse struct {
	ProviderID int64  `json:"providerId"`
	SlotStart  string `json:"slotStart"`
	Status     string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitBookingRequest) ToUseCaseRequest() *submitBooking.Request {
	return &submitBooking.Request{
		ProviderID: r.ProviderID,
		SlotStart:  r.SlotStart,
	}
}
