package put_measurement

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/NutriCare-BookingEngine/internal/api/handlers"
	"github.com/m04kA/NutriCare-BookingEngine/internal/service/measurements"
)

const (
	msgInvalidPatientID   = "некорректный идентификатор пациента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMeasurement = "некорректные данные показателя"
)

type Handler struct {
	service MeasurementsService
	logger  Logger
}

func NewHandler(service MeasurementsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/patients/{patientId}/measurements/{metric}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := strconv.ParseInt(vars["patientId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /patients/{id}/measurements/{metric} - Invalid patient id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPatientID)
		return
	}
	metric := vars["metric"]

	var req PutMeasurementRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /patients/{id}/measurements/{metric} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Put(r.Context(), patientID, metric, req.Value)
	if err != nil {
		switch {
		case errors.Is(err, measurements.ErrInvalidInput):
			h.logger.Warn("PUT /patients/{id}/measurements/{metric} - Invalid data: patient_id=%d, error=%v",
				patientID, err)
			handlers.RespondBadRequest(w, msgInvalidMeasurement)

		default:
			h.logger.Error("PUT /patients/{id}/measurements/{metric} - Failed: patient_id=%d, error=%v",
				patientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /patients/{id}/measurements/{metric} - Saved: patient_id=%d, metric=%s", patientID, metric)
	handlers.RespondJSON(w, http.StatusOK, result)
}
