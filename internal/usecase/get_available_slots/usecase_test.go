package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/integrations/masterservice"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// Фейки зависимостей use case

type fakeMasterClient struct {
	professional    *masterservice.Professional
	professionalErr error
	service         *masterservice.Service
	serviceErr      error
}

func (c *fakeMasterClient) GetProfessional(_ context.Context, _ int64) (*masterservice.Professional, error) {
	return c.professional, c.professionalErr
}

func (c *fakeMasterClient) GetService(_ context.Context, _, _ int64) (*masterservice.Service, error) {
	return c.service, c.serviceErr
}

type fakeScheduleRepo struct {
	schedule *domain.Schedule
	err      error
}

func (r *fakeScheduleRepo) GetLatestByProfessional(_ context.Context, _ int64) (*domain.Schedule, error) {
	return r.schedule, r.err
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (r *fakeAppointmentRepo) GetByProfessionalWithFilter(_ context.Context, _ domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
	return r.appointments, r.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Понедельник; текущее время - утро предыдущего дня
var (
	testDate = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
)

func newTestUseCase(apptRepo *fakeAppointmentRepo, schedRepo *fakeScheduleRepo, master *fakeMasterClient) *UseCase {
	uc := NewUseCase(apptRepo, schedRepo, master, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func activeMaster() *fakeMasterClient {
	return &fakeMasterClient{
		professional: &masterservice.Professional{ID: 1, DisplayName: "Анна", Active: true},
		service:      &masterservice.Service{ID: 10, ProfessionalID: 1, Name: "Стрижка", DurationMinutes: 60, Active: true},
	}
}

func validRequest() *Request {
	return &Request{
		ProfessionalID: 1,
		ServiceID:      10,
		Date:           testDate,
	}
}

func TestExecute_Success(t *testing.T) {
	// Запись 10:00-10:59 выбивает слоты 09:30, 10:00 и 10:30 для часовой услуги
	apptRepo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{{
			ProfessionalID: 1,
			ClientID:       2,
			Date:           testDate,
			StartTime:      "10:00",
			EndTime:        "10:59",
			Status:         domain.StatusConfirmed,
		}},
	}
	schedRepo := &fakeScheduleRepo{schedule: domain.DefaultSchedule(1)}

	uc := newTestUseCase(apptRepo, schedRepo, activeMaster())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ProfessionalID)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.False(t, resp.Degraded)

	starts := make(map[types.TimeString]bool, len(resp.Slots))
	for _, slot := range resp.Slots {
		starts[slot.StartTime] = true
		assert.Equal(t, 60, slot.DurationMinutes)
	}
	assert.False(t, starts["09:30"])
	assert.False(t, starts["10:00"])
	assert.False(t, starts["10:30"])
	assert.True(t, starts["11:00"])
	assert.True(t, starts["08:00"])
}

func TestExecute_DurationFromCatalog(t *testing.T) {
	master := activeMaster()
	master.service.DurationMinutes = 45

	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{schedule: domain.DefaultSchedule(1)}, master)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 45, resp.DurationMinutes)
}

func TestExecute_DurationOverride(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{schedule: domain.DefaultSchedule(1)}, activeMaster())

	req := validRequest()
	req.DurationMinutes = 90

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 90, resp.DurationMinutes)
}

func TestExecute_DefaultScheduleOnMissingConfig(t *testing.T) {
	// Графика нет - расчёт идёт по дефолтному, без ошибки и без деградации
	schedRepo := &fakeScheduleRepo{err: errors.New("schedule not found")}

	uc := newTestUseCase(&fakeAppointmentRepo{}, schedRepo, activeMaster())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.False(t, resp.Degraded)
	assert.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("08:00"), resp.Slots[0].StartTime)
}

func TestExecute_DegradedOnAppointmentsFailure(t *testing.T) {
	// Чтение записей упало - слоты считаются по пустому списку с флагом degraded
	apptRepo := &fakeAppointmentRepo{err: errors.New("connection refused")}

	uc := newTestUseCase(apptRepo, &fakeScheduleRepo{schedule: domain.DefaultSchedule(1)}, activeMaster())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	assert.NotEmpty(t, resp.Slots)
}

func TestExecute_NonWorkingDay(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{schedule: domain.DefaultSchedule(1)}, activeMaster())

	req := validRequest()
	req.Date = time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC) // воскресенье

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Errors(t *testing.T) {
	t.Run("professional not found", func(t *testing.T) {
		master := activeMaster()
		master.professional = nil
		master.professionalErr = masterservice.ErrProfessionalNotFound

		uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{}, master)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrProfessionalNotFound)
	})

	t.Run("professional inactive", func(t *testing.T) {
		master := activeMaster()
		master.professional.Active = false

		uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{}, master)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrProfessionalInactive)
	})

	t.Run("service not found", func(t *testing.T) {
		master := activeMaster()
		master.service = nil
		master.serviceErr = masterservice.ErrServiceNotFound

		uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{}, master)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("past date", func(t *testing.T) {
		uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{}, activeMaster())

		req := validRequest()
		req.Date = testNow.AddDate(0, 0, -1)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("invalid professional id", func(t *testing.T) {
		uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{}, activeMaster())

		req := validRequest()
		req.ProfessionalID = 0

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("duration out of range", func(t *testing.T) {
		uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{}, activeMaster())

		req := validRequest()
		req.DurationMinutes = 2000

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})
}
