package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	apptRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/appointment"
	masterClient "github.com/m04kA/Salon-BookingService/internal/integrations/masterservice"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

// UseCase use case для создания записи к мастеру
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	masterClient    MasterServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	masterClient MasterServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		masterClient:    masterClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверка доступности слота и вставка выполняются в сериализуемой транзакции
// с блокировкой записей дня, чтобы две конкурентные записи на один слот
// не прошли обе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, professional=%d, service=%d, date=%s, time=%s",
		req.ClientID, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	// Запись к самому себе отклоняется до любых обращений к внешним сервисам и БД
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем дату
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем мастера
	professional, err := uc.masterClient.GetProfessional(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, masterClient.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateAppointment: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}
	if !professional.Active {
		uc.logger.Warn("CreateAppointment: professional id=%d is inactive", req.ProfessionalID)
		return nil, ErrProfessionalInactive
	}

	// 5. Получаем услугу, определяем длительность и цену
	service, err := uc.masterClient.GetService(ctx, req.ProfessionalID, req.ServiceID)
	if err != nil {
		if errors.Is(err, masterClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = service.DurationMinutes
	}
	if err := validateDuration(duration); err != nil {
		uc.logger.Warn("CreateAppointment: duration validation failed: %v", err)
		return nil, err
	}

	price := servicePrice(service)
	if req.Price != nil {
		price = *req.Price
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Разрешаем график: отсутствие конфигурации деградирует до дефолтной
		schedule, err := uc.scheduleRepo.GetLatestByProfessional(txCtx, req.ProfessionalID)
		if err != nil {
			uc.logger.Warn("CreateAppointment: using default schedule for professional=%d: %v",
				req.ProfessionalID, err)
			schedule = domain.DefaultSchedule(req.ProfessionalID)
		}

		// 6.2. Загружаем активные записи дня с блокировкой (FOR UPDATE)
		filter := domain.ProfessionalAppointmentsFilter{
			ProfessionalID:  req.ProfessionalID,
			StartDate:       ptr.Ptr(req.Date),
			EndDate:         ptr.Ptr(req.Date),
			IncludeInactive: false,
		}

		appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 6.3. Повторно проверяем слот непосредственно перед записью
		// Валидация при выборе слота могла устареть
		slot := domain.CheckSlot(req.StartTime, schedule, req.Date, duration, now, appointments)
		if !slot.Available {
			uc.logger.Warn("CreateAppointment: slot %s rejected: %s", req.StartTime, slot.Reason)
			return reasonToError(slot.Reason)
		}

		// 6.4. Вычисляем время окончания той же скорректированной длительностью,
		// которой пользовался движок при проверке
		endTime, err := domain.AppointmentEndTime(req.StartTime, duration)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to compute end time: %v", err)
			return fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
		}

		// 6.5. Создаем запись с денормализацией данных услуги
		appt := &domain.Appointment{
			ProfessionalID:  req.ProfessionalID,
			ClientID:        req.ClientID,
			ServiceID:       req.ServiceID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			DurationMinutes: duration,
			Status:          domain.StatusConfirmed,
			ServiceName:     service.Name,
			ServicePrice:    price,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			// Exclusion constraint БД - последний рубеж против конкурентного двойного бронирования
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot %s lost the race for professional=%d",
					req.StartTime, req.ProfessionalID)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		ProfessionalID:  result.ProfessionalID,
		ServiceID:       result.ServiceID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// reasonToError конвертирует причину отказа движка в ошибку usecase
func reasonToError(reason domain.UnavailableReason) error {
	switch reason {
	case domain.ReasonDayNotWorking:
		return ErrDayNotWorking
	case domain.ReasonTimeInPast:
		return ErrTimeInPast
	case domain.ReasonOutsideHours:
		return ErrOutsideWorkingHours
	case domain.ReasonLunchConflict:
		return ErrLunchConflict
	case domain.ReasonBookingConflict:
		return ErrSlotTaken
	default:
		return fmt.Errorf("%w: unknown rejection reason %q", ErrInternal, reason)
	}
}

// servicePrice извлекает цену из услуги
// Если цена не указана (nil), возвращает 0.0
func servicePrice(service *masterClient.Service) float64 {
	if service.Price == nil {
		return 0.0
	}
	return *service.Price
}
