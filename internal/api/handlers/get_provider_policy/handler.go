package get_provider_policy

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/NutriCare-BookingEngine/internal/api/handlers"
)

const msgInvalidProviderID = "некорректный идентификатор диетолога"

type Handler struct {
	service PolicyService
	logger  Logger
}

func NewHandler(service PolicyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/policy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/policy - Invalid provider id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	policy, err := h.service.Get(r.Context(), providerID)
	if err != nil {
		h.logger.Error("GET /providers/{id}/policy - Failed: provider_id=%d, error=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, policy)
}
