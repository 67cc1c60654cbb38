package update_provider_policy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/NutriCare-BookingEngine/internal/api/handlers"
	"github.com/m04kA/NutriCare-BookingEngine/internal/service/schedulepolicy"
)

const (
	msgInvalidProviderID  = "некорректный идентификатор диетолога"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPolicy      = "некорректные параметры рабочих часов"
)

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

// Handle PUT /api/v1/providers/{providerId}/policy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /providers/{id}/policy - Invalid provider id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	var req schedulepolicy.UpdatePolicyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /providers/{id}/policy - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), providerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedulepolicy.ErrInvalidInput):
			h.logger.Warn("PUT /providers/{id}/policy - Invalid policy: provider_id=%d, error=%v", providerID, err)
			handlers.RespondBadRequest(w, msgInvalidPolicy)

		default:
			h.logger.Error("PUT /providers/{id}/policy - Failed: provider_id=%d, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /providers/{id}/policy - Policy updated: provider_id=%d", providerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
