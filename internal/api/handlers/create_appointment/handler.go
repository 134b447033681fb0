package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	createAppointment "github.com/m04kA/Salon-BookingService/internal/usecase/create_appointment"
)

const (
	msgMissingUserID        = "отсутствует ID пользователя"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты записи, ожидается YYYY-MM-DD"
	msgInvalidTime          = "некорректный формат времени начала, ожидается HH:MM"
	msgSelfBooking          = "нельзя записаться к самому себе"
	msgProfessionalNotFound = "мастер не найден"
	msgProfessionalInactive = "мастер временно не принимает записи"
	msgServiceNotFound      = "услуга не найдена"
	msgInvalidBookingDate   = "некорректная дата записи"
	msgDayNotWorking        = "мастер не работает в выбранный день"
	msgTimeInPast           = "выбранное время уже прошло"
	msgOutsideWorkingHours  = "выбранное время выходит за рабочие часы мастера"
	msgLunchConflict        = "выбранное время пересекается с обеденным перерывом"
	msgSlotTaken            = "выбранный временной слот уже занят"
	msgInvalidDuration      = "некорректная длительность услуги"
	msgInvalidInput         = "некорректные данные записи"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		if req.StartTime != "" && len(req.StartTime) != 5 {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createAppointment.ErrSelfBooking):
			h.logger.Warn("POST /appointments - Self booking attempt: client_id=%d, professional_id=%d",
				clientID, req.ProfessionalID)
			handlers.RespondBadRequest(w, msgSelfBooking)

		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: client_id=%d, professional_id=%d, date=%s, time=%s",
				clientID, req.ProfessionalID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrProfessionalNotFound):
			h.logger.Warn("POST /appointments - Professional not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createAppointment.ErrProfessionalInactive):
			h.logger.Warn("POST /appointments - Professional inactive: professional_id=%d", req.ProfessionalID)
			handlers.RespondBadRequest(w, msgProfessionalInactive)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: professional_id=%d, service_id=%d",
				req.ProfessionalID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: client_id=%d, date=%s", clientID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createAppointment.ErrDayNotWorking):
			h.logger.Warn("POST /appointments - Day not working: professional_id=%d, date=%s",
				req.ProfessionalID, req.Date)
			handlers.RespondBadRequest(w, msgDayNotWorking)

		case errors.Is(err, createAppointment.ErrTimeInPast):
			h.logger.Warn("POST /appointments - Time in past: professional_id=%d, date=%s, time=%s",
				req.ProfessionalID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgTimeInPast)

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside working hours: professional_id=%d, time=%s",
				req.ProfessionalID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createAppointment.ErrLunchConflict):
			h.logger.Warn("POST /appointments - Lunch conflict: professional_id=%d, time=%s",
				req.ProfessionalID, req.StartTime)
			handlers.RespondBadRequest(w, msgLunchConflict)

		case errors.Is(err, createAppointment.ErrInvalidDuration):
			h.logger.Warn("POST /appointments - Invalid duration: client_id=%d, duration=%d",
				clientID, req.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client_id=%d, professional_id=%d, error=%v",
				clientID, req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, client_id=%d, professional_id=%d",
		result.ID, clientID, req.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
