package get_blocked_dates

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/NutriCare-BookingEngine/internal/api/handlers"
)

const msgInvalidProviderID = "некорректный идентификатор диетолога"

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

// Handle GET /api/v1/providers/{providerId}/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/blocked-dates - Invalid provider id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	dates, err := h.service.List(r.Context(), providerID)
	if err != nil {
		h.logger.Error("GET /providers/{id}/blocked-dates - Failed: provider_id=%d, error=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	if dates == nil {
		dates = []string{}
	}
	handlers.RespondJSON(w, http.StatusOK, BlockedDatesResponse{
		ProviderID: providerID,
		Dates:      dates,
	})
}
