package get_schedule

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/service/schedule/models"
)

const (
	msgInvalidProfessionalID = "некорректный ID мастера"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем professionalId из URL
	vars := mux.Vars(r)
	professionalIDStr := vars["professionalId"]

	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/schedule - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Получаем график; при отсутствии сохранённого вернётся график по умолчанию
	schedule, err := h.service.GetSchedule(r.Context(), &models.GetScheduleRequest{ProfessionalID: professionalID})
	if err != nil {
		h.logger.Error("GET /professionals/{id}/schedule - Failed to get schedule: professional_id=%d, error=%v",
			professionalID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /professionals/{id}/schedule - Schedule retrieved successfully: professional_id=%d, is_default=%v",
		professionalID, schedule.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
