package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/integrations/masterservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByProfessionalWithFilter(ctx context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error)
}

// ScheduleRepository интерфейс репозитория графиков
type ScheduleRepository interface {
	GetLatestByProfessional(ctx context.Context, professionalID int64) (*domain.Schedule, error)
}

// MasterServiceClient интерфейс клиента для MasterService
type MasterServiceClient interface {
	GetProfessional(ctx context.Context, professionalID int64) (*masterservice.Professional, error)
	GetService(ctx context.Context, professionalID, serviceID int64) (*masterservice.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
