package get_professional_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/service/appointments"
	"github.com/m04kA/Salon-BookingService/internal/service/appointments/models"
)

const (
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgInvalidStartDate      = "некорректный формат начала периода, ожидается YYYY-MM-DD"
	msgInvalidEndDate        = "некорректный формат конца периода, ожидается YYYY-MM-DD"
	msgInvalidStatus         = "некорректный статус записи"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgForbidden             = "доступ запрещен"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/appointments
// Query params: startDate, endDate, status, includeInactive (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем professionalId из URL
	vars := mux.Vars(r)
	professionalIDStr := vars["professionalId"]

	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/appointments - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /professionals/{id}/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetProfessionalAppointmentsRequest{
		UserID:         userID,
		ProfessionalID: professionalID,
	}

	// Опциональные границы периода
	if startDateStr := r.URL.Query().Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			h.logger.Warn("GET /professionals/{id}/appointments - Invalid start date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStartDate)
			return
		}
		req.StartDate = &startDate
	}

	if endDateStr := r.URL.Query().Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			h.logger.Warn("GET /professionals/{id}/appointments - Invalid end date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEndDate)
			return
		}
		req.EndDate = &endDate
	}

	// Опциональный фильтр по статусу
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	// Опционально включаем отменённые записи
	req.IncludeInactive = r.URL.Query().Get("includeInactive") == "true"

	// Получаем записи (сервис сам проверит права доступа)
	result, err := h.service.GetProfessionalAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /professionals/{id}/appointments - Access denied: professional_id=%d, user_id=%d",
				professionalID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("GET /professionals/{id}/appointments - Invalid status filter: professional_id=%d", professionalID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /professionals/{id}/appointments - Failed to get appointments: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/appointments - Found %d appointments: professional_id=%d",
		len(result.Appointments), professionalID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
