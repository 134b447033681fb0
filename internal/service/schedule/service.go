package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	masterClient "github.com/m04kA/Salon-BookingService/internal/integrations/masterservice"
	schedRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/Salon-BookingService/internal/service/schedule/models"
)

// Service сервис для работы с графиками мастеров
type Service struct {
	scheduleRepo ScheduleRepository
	masterClient MasterServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса графиков
func NewService(
	scheduleRepo ScheduleRepository,
	masterClient MasterServiceClient,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		masterClient: masterClient,
		logger:       logger,
	}
}

// GetSchedule получает актуальный график мастера
// Публичный метод - доступен всем
// Если мастер ещё не сохранял график, возвращается график по умолчанию с IsDefault=true
func (s *Service) GetSchedule(ctx context.Context, req *models.GetScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for professional=%d", req.ProfessionalID)

	stored, err := s.scheduleRepo.GetLatestByProfessional(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, schedRepo.ErrScheduleNotFound) {
			s.logger.Info("GetSchedule: no stored schedule for professional=%d, returning default", req.ProfessionalID)
			return models.FromDomainSchedule(domain.DefaultSchedule(req.ProfessionalID), true), nil
		}
		s.logger.Error("GetSchedule: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(stored, false), nil
}

// UpdateSchedule сохраняет новый график мастера
// Доступно только самому мастеру
// График пишется новой версией - актуальной считается последняя созданная
func (s *Service) UpdateSchedule(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateSchedule: updating schedule for professional=%d by user=%d", req.ProfessionalID, req.UserID)

	// 1. Проверяем права доступа - график меняет только сам мастер
	if req.UserID != req.ProfessionalID {
		s.logger.Warn("UpdateSchedule: user=%d is not professional=%d", req.UserID, req.ProfessionalID)
		return nil, ErrAccessDenied
	}

	// 2. Проверяем существование мастера
	if _, err := s.masterClient.GetProfessional(ctx, req.ProfessionalID); err != nil {
		if errors.Is(err, masterClient.ErrProfessionalNotFound) {
			s.logger.Warn("UpdateSchedule: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("UpdateSchedule: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 3. Валидируем инварианты графика
	schedule := req.ToDomainSchedule()
	if err := schedule.Validate(); err != nil {
		s.logger.Warn("UpdateSchedule: validation failed for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 4. Сохраняем новую версию графика
	created, err := s.scheduleRepo.Create(ctx, schedule)
	if err != nil {
		s.logger.Error("UpdateSchedule: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: successfully saved schedule id=%d for professional=%d", created.ID, req.ProfessionalID)
	return models.FromDomainSchedule(created, false), nil
}
