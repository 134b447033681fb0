package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/Salon-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgInvalidServiceID      = "некорректный ID услуги"
	msgMissingServiceID      = "ID услуги обязателен"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration       = "некорректная длительность услуги"
	msgPastDate              = "дата не может быть в прошлом"
	msgProfessionalNotFound  = "мастер не найден"
	msgProfessionalInactive  = "мастер временно не принимает записи"
	msgServiceNotFound       = "услуга не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/available-slots
// Query params: serviceId (required), date (required, YYYY-MM-DD), durationMinutes (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем professionalId из URL
	professionalIDStr := vars["professionalId"]
	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/available-slots - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Извлекаем serviceId из query параметров
	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /professionals/{id}/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /professionals/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Опциональная длительность; 0 = взять из каталога услуг (решает use case)
	durationMinutes := 0
	if durationStr := r.URL.Query().Get("durationMinutes"); durationStr != "" {
		durationMinutes, err = strconv.Atoi(durationStr)
		if err != nil || durationMinutes < 0 {
			h.logger.Warn("GET /professionals/{id}/available-slots - Invalid duration: %q", durationStr)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(professionalID, serviceID, dateStr, durationMinutes)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailableSlots.ErrProfessionalNotFound):
			h.logger.Warn("GET /professionals/{id}/available-slots - Professional not found: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getAvailableSlots.ErrProfessionalInactive):
			h.logger.Warn("GET /professionals/{id}/available-slots - Professional inactive: professional_id=%d", professionalID)
			handlers.RespondBadRequest(w, msgProfessionalInactive)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /professionals/{id}/available-slots - Service not found: professional_id=%d, service_id=%d",
				professionalID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /professionals/{id}/available-slots - Past date: professional_id=%d, date=%s",
				professionalID, dateStr)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			h.logger.Warn("GET /professionals/{id}/available-slots - Invalid duration: professional_id=%d, duration=%d",
				professionalID, durationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("GET /professionals/{id}/available-slots - Failed to get slots: professional_id=%d, service_id=%d, error=%v",
				professionalID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /professionals/{id}/available-slots - Found %d slots: professional_id=%d, service_id=%d, date=%s, degraded=%v",
		len(response.Slots), professionalID, serviceID, dateStr, result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, response)
}
