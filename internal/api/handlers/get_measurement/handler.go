package get_measurement

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/NutriCare-BookingEngine/internal/api/handlers"
	"github.com/m04kA/NutriCare-BookingEngine/internal/service/measurements"
)

const (
	msgInvalidPatientID = "некорректный идентификатор пациента"
	msgInvalidMetric    = "некорректное имя показателя"
	msgNotFound         = "показатель не найден"
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

// Handle GET /api/v1/patients/{patientId}/measurements/{metric}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := strconv.ParseInt(vars["patientId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /patients/{id}/measurements/{metric} - Invalid patient id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPatientID)
		return
	}
	metric := vars["metric"]

	result, err := h.service.Get(r.Context(), patientID, metric)
	if err != nil {
		switch {
		case errors.Is(err, measurements.ErrMeasurementNotFound):
			h.logger.Warn("GET /patients/{id}/measurements/{metric} - Not found: patient_id=%d, metric=%s",
				patientID, metric)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, measurements.ErrInvalidInput):
			h.logger.Warn("GET /patients/{id}/measurements/{metric} - Invalid input: patient_id=%d, error=%v",
				patientID, err)
			handlers.RespondBadRequest(w, msgInvalidMetric)

		default:
			h.logger.Error("GET /patients/{id}/measurements/{metric} - Failed: patient_id=%d, error=%v",
				patientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
