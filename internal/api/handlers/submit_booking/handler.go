package submit_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/NutriCare-BookingEngine/internal/api/handlers"
	"github.com/m04kA/NutriCare-BookingEngine/internal/orchestrator"
	submitBooking "github.com/m04kA/NutriCare-BookingEngine/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные входные данные"
	msgSlotUnavailable    = "выбранный слот недоступен"
	msgUnauthorized       = "требуется авторизация"
	msgUpstreamFailed     = "сервис записей временно недоступен"
	msgNetworkFailed      = "не удалось связаться с сервисом записей"
	msgSubmissionBusy     = "предыдущее бронирование ещё обрабатывается"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if errors.Is(err, submitBooking.ErrInvalidInput) {
			h.logger.Warn("POST /bookings - Invalid input: provider_id=%d, error=%v", req.ProviderID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /bookings - Failed: provider_id=%d, error=%v", req.ProviderID, err)
		handlers.RespondInternalError(w)
		return
	}

	if !result.OK {
		h.respondFailure(w, &req, result)
		return
	}

	h.logger.Info("POST /bookings - Booked: provider_id=%d, slot_start=%s", req.ProviderID, req.SlotStart)
	handlers.RespondJSON(w, http.StatusCreated, SubmitBookingResponse{
		ProviderID: req.ProviderID,
		SlotStart:  req.SlotStart,
		Status:     "booked",
	})
}

// respondFailure мапит типизированный неуспех бронирования в HTTP статус
func (h *Handler) respondFailure(w http.ResponseWriter, req *SubmitBookingRequest, result orchestrator.Result) {
	h.logger.Warn("POST /bookings - Rejected: provider_id=%d, slot_start=%s, kind=%s, message=%s",
		req.ProviderID, req.SlotStart, result.Kind, result.Message)

	switch result.Kind {
	case orchestrator.KindValidation:
		handlers.RespondBadRequest(w, failureMessage(result, msgInvalidInput))
	case orchestrator.KindConflict:
		handlers.RespondError(w, http.StatusConflict, failureMessage(result, msgSlotUnavailable))
	case orchestrator.KindUnauthorized:
		handlers.RespondUnauthorized(w, msgUnauthorized)
	case orchestrator.KindBusy:
		handlers.RespondError(w, http.StatusTooManyRequests, msgSubmissionBusy)
	case orchestrator.KindNetwork:
		handlers.RespondError(w, http.StatusBadGateway, msgNetworkFailed)
	case orchestrator.KindServer:
		handlers.RespondError(w, http.StatusBadGateway, msgUpstreamFailed)
	default:
		handlers.RespondInternalError(w)
	}
}

func failureMessage(result orchestrator.Result, fallback string) string {
	if result.Message != "" {
		return result.Message
	}
	return fallback
}
