package update_blocked_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/NutriCare-BookingEngine/internal/api/handlers"
	"github.com/m04kA/NutriCare-BookingEngine/internal/service/blockeddates"
)

const (
	msgInvalidProviderID  = "некорректный идентификатор диетолога"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDates       = "некорректный формат дат, ожидается YYYY-MM-DD"
)

type Handler struct {
	service BlockedDatesService
	logger  Logger
}

func NewHandler(service BlockedDatesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/providers/{providerId}/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /providers/{id}/blocked-dates - Invalid provider id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	var req UpdateBlockedDatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /providers/{id}/blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	saved, err := h.service.Replace(r.Context(), providerID, req.Dates)
	if err != nil {
		switch {
		case errors.Is(err, blockeddates.ErrInvalidInput):
			h.logger.Warn("PUT /providers/{id}/blocked-dates - Invalid dates: provider_id=%d, error=%v", providerID, err)
			handlers.RespondBadRequest(w, msgInvalidDates)

		default:
			h.logger.Error("PUT /providers/{id}/blocked-dates - Failed: provider_id=%d, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /providers/{id}/blocked-dates - Saved: provider_id=%d, dates=%d", providerID, len(saved))
	handlers.RespondJSON(w, http.StatusOK, BlockedDatesResponse{
		ProviderID: providerID,
		Dates:      saved,
	})
}
