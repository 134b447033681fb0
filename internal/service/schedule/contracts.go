package schedule

import (
	"context"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/integrations/masterservice"
)

// ScheduleRepository интерфейс репозитория расписаний мастеров
type ScheduleRepository interface {
	GetLatestByProfessional(ctx context.Context, professionalID int64) (*domain.Schedule, error)
	Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
}

// MasterServiceClient интерфейс клиента для MasterService
type MasterServiceClient interface {
	GetProfessional(ctx context.Context, professionalID int64) (*masterservice.Professional, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
