package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	SweepFinished(ctx context.Context, now time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider источник текущего времени
type TimeProvider interface {
	Now() time.Time
}

// StatusSweeper фоновый воркер, переводящий завершившиеся по времени записи
// в терминальные статусы: confirmed -> completed, pending -> no_show
type StatusSweeper struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger

	cron *cron.Cron
}

// NewStatusSweeper создает новый воркер статусов
func NewStatusSweeper(
	appointmentRepo AppointmentRepository,
	timeProvider TimeProvider,
	logger Logger,
) *StatusSweeper {
	return &StatusSweeper{
		appointmentRepo: appointmentRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Start запускает воркер по cron расписанию
func (s *StatusSweeper) Start(schedule string) error {
	s.cron = cron.New()

	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("StatusSweeper: started with schedule %q", schedule)
	return nil
}

// Stop останавливает воркер и дожидается завершения текущего прохода
func (s *StatusSweeper) Stop() {
	if s.cron == nil {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("StatusSweeper: stopped")
}

// sweep один проход воркера
// Ошибки не фатальны: следующий запуск по расписанию подхватит пропущенные записи
func (s *StatusSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := s.timeProvider.Now()

	affected, err := s.appointmentRepo.SweepFinished(ctx, now)
	if err != nil {
		s.logger.Error("StatusSweeper: sweep failed: %v", err)
		return
	}

	if affected > 0 {
		s.logger.Info("StatusSweeper: updated %d finished appointments", affected)
	}
}
