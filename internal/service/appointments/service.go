package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	apptRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/Salon-BookingService/internal/service/appointments/models"
)

// Service сервис для работы с записями к мастерам
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Проверяет права доступа - запись видят только её клиент и её мастер
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if appt.ClientID != userID && appt.ProfessionalID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// GetClientAppointments получает историю записей клиента
// Клиент видит только собственную историю
// Опционально фильтрует по статусу
func (s *Service) GetClientAppointments(ctx context.Context, req *models.GetClientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetClientAppointments: fetching appointments for client=%d, status=%v", req.ClientID, req.Status)

	if req.UserID != req.ClientID {
		s.logger.Warn("GetClientAppointments: access denied for user=%d to client=%d history", req.UserID, req.ClientID)
		return nil, ErrAccessDenied
	}

	// Конвертируем статус из строки в domain.AppointmentStatus
	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientAppointments: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appointments, err := s.appointmentRepo.GetByClientID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: successfully fetched %d appointments for client=%d",
		len(appointments), req.ClientID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetProfessionalAppointments получает записи мастера с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению отменённых записей
// Доступно только самому мастеру
func (s *Service) GetProfessionalAppointments(ctx context.Context, req *models.GetProfessionalAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetProfessionalAppointments: fetching appointments for professional=%d, user=%d",
		req.ProfessionalID, req.UserID)

	if req.UserID != req.ProfessionalID {
		s.logger.Warn("GetProfessionalAppointments: access denied for user=%d to professional=%d calendar",
			req.UserID, req.ProfessionalID)
		return nil, ErrAccessDenied
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetProfessionalAppointments: invalid filter for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	// Получаем записи с фильтрацией
	appointments, err := s.appointmentRepo.GetByProfessionalWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetProfessionalAppointments: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: GetProfessionalAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProfessionalAppointments: successfully fetched %d appointments for professional=%d",
		len(appointments), req.ProfessionalID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись
// Клиент может отменить свою запись, мастер - запись в своём календаре
// Отмена возможна только из статусов pending и confirmed
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", appointmentID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLen {
		s.logger.Warn("Cancel: cancellation reason too long for appointment id=%d", appointmentID)
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	// Получаем запись
	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if appt.ClientID != req.UserID && appt.ProfessionalID != req.UserID {
		s.logger.Warn("Cancel: access denied for user=%d to cancel appointment id=%d", req.UserID, appointmentID)
		return ErrAccessDenied
	}

	// Проверяем, можно ли отменить запись
	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appt.Status)
		return ErrCannotCancel
	}

	// Отменяем запись
	if err := s.appointmentRepo.Cancel(ctx, appointmentID, req.CancellationReason); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)
	return nil
}

// UpdateStatus обновляет статус записи
// Доступно только мастеру записи; переходы ограничены доменной моделью:
// pending -> confirmed | cancelled | no_show, confirmed -> completed | cancelled | no_show
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s by user=%d",
		appointmentID, req.Status, req.UserID)

	// Получаем запись
	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа (только мастер записи)
	if appt.ProfessionalID != req.UserID {
		s.logger.Warn("UpdateStatus: access denied for user=%d to appointment id=%d", req.UserID, appointmentID)
		return ErrAccessDenied
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, appointmentID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	// Проверяем допустимость перехода
	if !appt.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: invalid transition %s -> %s for appointment id=%d",
			appt.Status, newStatus, appointmentID)
		return ErrInvalidTransition
	}

	// Обновляем статус
	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found during update", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", appointmentID, newStatus)
	return nil
}
