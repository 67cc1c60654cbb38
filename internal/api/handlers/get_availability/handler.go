package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/NutriCare-BookingEngine/internal/api/handlers"
	getAvailability "github.com/m04kA/NutriCare-BookingEngine/internal/usecase/get_availability"
)

const (
	msgInvalidProviderID = "некорректный идентификатор диетолога"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput      = "некорректные входные данные"
	msgUnauthorized      = "требуется авторизация"
	msgUpstreamFailed    = "сервис записей временно недоступен"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid provider id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	useCaseReq, err := ToUseCaseRequest(providerID, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: provider_id=%d, error=%v", providerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailability.ErrUnauthorized):
			h.logger.Warn("GET /availability - Unauthorized: provider_id=%d", providerID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, getAvailability.ErrUpstreamUnavailable):
			h.logger.Error("GET /availability - Upstream unavailable: provider_id=%d, error=%v", providerID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamFailed)

		default:
			h.logger.Error("GET /availability - Failed: provider_id=%d, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - OK: provider_id=%d, date=%s, slots=%d",
		providerID, resp.Date, len(resp.Slots))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
