package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	masterClient "github.com/m04kA/Salon-BookingService/internal/integrations/masterservice"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	masterClient    MasterServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	masterClient MasterServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		masterClient:    masterClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: professional=%d, service=%d, date=%s",
		req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем дату: для прошедших дней слотов не бывает
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем мастера
	professional, err := uc.masterClient.GetProfessional(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, masterClient.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}
	if !professional.Active {
		uc.logger.Warn("GetAvailableSlots: professional id=%d is inactive", req.ProfessionalID)
		return nil, ErrProfessionalInactive
	}

	// 5. Получаем услугу и определяем длительность
	service, err := uc.masterClient.GetService(ctx, req.ProfessionalID, req.ServiceID)
	if err != nil {
		if errors.Is(err, masterClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = service.DurationMinutes
	}
	if err := validateDuration(duration); err != nil {
		uc.logger.Warn("GetAvailableSlots: duration validation failed: %v", err)
		return nil, err
	}

	// 6. Загружаем график и записи параллельно: между ними нет зависимости,
	// а оба пути деградируют без ошибки
	var (
		schedule     *domain.Schedule
		appointments []*domain.Appointment
		degraded     bool
	)

	var g errgroup.Group
	g.Go(func() error {
		schedule = uc.resolveSchedule(ctx, req.ProfessionalID)
		return nil
	})
	g.Go(func() error {
		appointments, degraded = uc.loadAppointments(ctx, req.ProfessionalID, req.Date)
		return nil
	})
	_ = g.Wait()

	// 7. Считаем доступные слоты
	slots := domain.GenerateAvailableSlots(schedule, req.Date, duration, now, appointments)

	result := make([]Slot, len(slots))
	for i, slot := range slots {
		result[i] = Slot{
			StartTime:       slot.StartTime,
			DurationMinutes: duration,
		}
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for professional=%d, service=%d, date=%s, degraded=%t",
		len(result), req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat), degraded)

	return &Response{
		Date:            req.Date,
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		DurationMinutes: duration,
		Slots:           result,
		Degraded:        degraded,
	}, nil
}

// resolveSchedule возвращает график мастера или дефолтный график
// Никогда не возвращает ошибку: отсутствие или недоступность конфигурации
// деградирует до дефолта, чтобы расчёт доступности не блокировался
func (uc *UseCase) resolveSchedule(ctx context.Context, professionalID int64) *domain.Schedule {
	schedule, err := uc.scheduleRepo.GetLatestByProfessional(ctx, professionalID)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: using default schedule for professional=%d: %v", professionalID, err)
		return domain.DefaultSchedule(professionalID)
	}
	return schedule
}

// loadAppointments возвращает активные записи мастера на дату
// Ошибка чтения деградирует до пустого списка с флагом degraded:
// UI продолжает работать, а точность восстановит проверка при создании записи
func (uc *UseCase) loadAppointments(ctx context.Context, professionalID int64, date time.Time) ([]*domain.Appointment, bool) {
	filter := domain.ProfessionalAppointmentsFilter{
		ProfessionalID:  professionalID,
		StartDate:       ptr.Ptr(date),
		EndDate:         ptr.Ptr(date),
		IncludeInactive: false, // Отменённые записи не занимают слоты
	}

	appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load appointments for professional=%d, degrading to empty list: %v",
			professionalID, err)
		return []*domain.Appointment{}, true
	}

	return appointments, false
}
