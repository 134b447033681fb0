package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// scheduleColumns полный набор колонок таблицы professional_schedules
var scheduleColumns = []string{
	"id",
	"professional_id",
	"opening_time",
	"closing_time",
	"lunch_break_enabled",
	"lunch_start",
	"lunch_end",
	"works_monday",
	"works_tuesday",
	"works_wednesday",
	"works_thursday",
	"works_friday",
	"works_saturday",
	"works_sunday",
	"slot_step_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с графиками мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория графиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetLatestByProfessional получает последний созданный график мастера
// При нескольких сохранённых версиях действует самая свежая
func (r *Repository) GetLatestByProfessional(ctx context.Context, professionalID int64) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("professional_schedules").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetLatestByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	schedule, err := scanSchedule(row)
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLatestByProfessional - scan schedule: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// Create сохраняет новую версию графика мастера
// Предыдущие версии не удаляются: чтение всегда берёт последнюю созданную
func (r *Repository) Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("professional_schedules").
		Columns(
			"professional_id",
			"opening_time",
			"closing_time",
			"lunch_break_enabled",
			"lunch_start",
			"lunch_end",
			"works_monday",
			"works_tuesday",
			"works_wednesday",
			"works_thursday",
			"works_friday",
			"works_saturday",
			"works_sunday",
			"slot_step_minutes",
		).
		Values(
			schedule.ProfessionalID,
			schedule.OpeningTime,
			schedule.ClosingTime,
			schedule.LunchBreakEnabled,
			schedule.LunchStart,
			schedule.LunchEnd,
			schedule.WorkingDays.Monday,
			schedule.WorkingDays.Tuesday,
			schedule.WorkingDays.Wednesday,
			schedule.WorkingDays.Thursday,
			schedule.WorkingDays.Friday,
			schedule.WorkingDays.Saturday,
			schedule.WorkingDays.Sunday,
			schedule.SlotStepMinutes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return schedule, nil
}

// scanSchedule сканирует график из строки результата
func scanSchedule(row *sql.Row) (*domain.Schedule, error) {
	var s domain.Schedule
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.ProfessionalID,
		&s.OpeningTime,
		&s.ClosingTime,
		&s.LunchBreakEnabled,
		// Обеденные времена хранятся как NULL, когда перерыв выключен;
		// TimeString.Scan принимает NULL как пустое значение
		&s.LunchStart,
		&s.LunchEnd,
		&s.WorkingDays.Monday,
		&s.WorkingDays.Tuesday,
		&s.WorkingDays.Wednesday,
		&s.WorkingDays.Thursday,
		&s.WorkingDays.Friday,
		&s.WorkingDays.Saturday,
		&s.WorkingDays.Sunday,
		&s.SlotStepMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
