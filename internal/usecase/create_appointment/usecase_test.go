package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	apptRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/Salon-BookingService/internal/integrations/masterservice"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// Фейки зависимостей use case

type fakeAppointmentRepo struct {
	existing  []*domain.Appointment
	getErr    error
	createErr error

	created *domain.Appointment // что реально ушло в Create
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.created = appt

	saved := *appt
	saved.ID = 100
	saved.CreatedAt = time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	saved.UpdatedAt = saved.CreatedAt
	return &saved, nil
}

func (r *fakeAppointmentRepo) GetByProfessionalWithFilter(_ context.Context, _ domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
	return r.existing, r.getErr
}

type fakeScheduleRepo struct {
	schedule *domain.Schedule
	err      error
}

func (r *fakeScheduleRepo) GetLatestByProfessional(_ context.Context, _ int64) (*domain.Schedule, error) {
	return r.schedule, r.err
}

type fakeMasterClient struct {
	professional    *masterservice.Professional
	professionalErr error
	service         *masterservice.Service
	serviceErr      error

	professionalCalls int
}

func (c *fakeMasterClient) GetProfessional(_ context.Context, _ int64) (*masterservice.Professional, error) {
	c.professionalCalls++
	return c.professional, c.professionalErr
}

func (c *fakeMasterClient) GetService(_ context.Context, _, _ int64) (*masterservice.Service, error) {
	return c.service, c.serviceErr
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
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

var (
	testDate = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC) // понедельник
	testNow  = time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
)

type fixture struct {
	appts  *fakeAppointmentRepo
	sched  *fakeScheduleRepo
	master *fakeMasterClient
	tx     *fakeTxManager
	uc     *UseCase
}

func newFixture() *fixture {
	price := 1500.0
	f := &fixture{
		appts: &fakeAppointmentRepo{},
		sched: &fakeScheduleRepo{schedule: domain.DefaultSchedule(1)},
		master: &fakeMasterClient{
			professional: &masterservice.Professional{ID: 1, DisplayName: "Анна", Active: true},
			service:      &masterservice.Service{ID: 10, ProfessionalID: 1, Name: "Стрижка", DurationMinutes: 60, Price: &price, Active: true},
		},
		tx: &fakeTxManager{},
	}
	f.uc = NewUseCase(f.appts, f.sched, f.master, f.tx, nopLogger{})
	f.uc.timeProvider = &fixedTimeProvider{now: testNow}
	return f
}

func validRequest() *Request {
	return &Request{
		ClientID:       2,
		ProfessionalID: 1,
		ServiceID:      10,
		Date:           testDate,
		StartTime:      "10:00",
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	// Конец записи - start + duration - 1 минута
	assert.Equal(t, types.TimeString("10:59"), resp.EndTime)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "Стрижка", resp.ServiceName)
	assert.Equal(t, 1500.0, resp.ServicePrice)

	assert.Equal(t, 1, f.tx.calls)
	require.NotNil(t, f.appts.created)
	assert.Equal(t, types.TimeString("10:59"), f.appts.created.EndTime)
}

func TestExecute_SelfBookingRejectedBeforeAnyIO(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.ClientID = 1 // совпадает с ProfessionalID

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSelfBooking)

	// Отказ происходит до обращений к внешним сервисам и БД
	assert.Equal(t, 0, f.master.professionalCalls)
	assert.Equal(t, 0, f.tx.calls)
	assert.Nil(t, f.appts.created)
}

func TestExecute_NonCanonicalStartTimeRejected(t *testing.T) {
	// "9:30" без ведущего нуля ломает лексикографические сравнения движка
	// и обязано отсекаться валидацией до каких-либо проверок слота
	f := newFixture()
	f.appts.existing = []*domain.Appointment{{
		ProfessionalID: 1, ClientID: 3, Date: testDate,
		StartTime: "09:30", EndTime: "10:29", Status: domain.StatusConfirmed,
	}}

	req := validRequest()
	req.StartTime = "9:30"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, f.master.professionalCalls)
	assert.Nil(t, f.appts.created)
}

func TestExecute_SlotConflicts(t *testing.T) {
	tests := []struct {
		name      string
		startTime types.TimeString
		existing  []*domain.Appointment
		wantErr   error
	}{
		{
			name:      "slot taken by existing appointment",
			startTime: "10:30",
			existing: []*domain.Appointment{{
				ProfessionalID: 1, ClientID: 3, Date: testDate,
				StartTime: "10:00", EndTime: "10:59", Status: domain.StatusConfirmed,
			}},
			wantErr: ErrSlotTaken,
		},
		{
			name:      "outside working hours",
			startTime: "17:30",
			wantErr:   ErrOutsideWorkingHours,
		},
		{
			name:      "lunch conflict",
			startTime: "12:00",
			wantErr:   ErrLunchConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.appts.existing = tt.existing

			req := validRequest()
			req.StartTime = tt.startTime

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, f.appts.created)
		})
	}
}

func TestExecute_DayNotWorking(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Date = time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC) // воскресенье

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDayNotWorking)
}

func TestExecute_TimeInPastToday(t *testing.T) {
	f := newFixture()
	// Сейчас 14:05 запрашиваемого дня
	f.uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 3, 16, 14, 5, 0, 0, time.UTC)}

	req := validRequest()
	req.StartTime = "14:00"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTimeInPast)
}

func TestExecute_PastDate(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_DefaultScheduleWhenMissing(t *testing.T) {
	// Графика нет - проверка идёт по дефолтному (08:00-18:00)
	f := newFixture()
	f.sched.schedule = nil
	f.sched.err = errors.New("schedule not found")

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:59"), resp.EndTime)
}

func TestExecute_RaceLostOnInsert(t *testing.T) {
	// Движок пропустил слот, но exclusion constraint БД отбил вставку
	f := newFixture()
	f.appts.createErr = apptRepo.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_MasterServiceErrors(t *testing.T) {
	t.Run("professional not found", func(t *testing.T) {
		f := newFixture()
		f.master.professional = nil
		f.master.professionalErr = masterservice.ErrProfessionalNotFound

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrProfessionalNotFound)
	})

	t.Run("professional inactive", func(t *testing.T) {
		f := newFixture()
		f.master.professional.Active = false

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrProfessionalInactive)
	})

	t.Run("service not found", func(t *testing.T) {
		f := newFixture()
		f.master.service = nil
		f.master.serviceErr = masterservice.ErrServiceNotFound

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestExecute_PriceResolution(t *testing.T) {
	t.Run("price from catalog", func(t *testing.T) {
		f := newFixture()

		resp, err := f.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, 1500.0, resp.ServicePrice)
	})

	t.Run("nil catalog price becomes zero", func(t *testing.T) {
		f := newFixture()
		f.master.service.Price = nil

		resp, err := f.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, 0.0, resp.ServicePrice)
	})

	t.Run("explicit price wins", func(t *testing.T) {
		f := newFixture()

		req := validRequest()
		price := 2000.0
		req.Price = &price

		resp, err := f.uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 2000.0, resp.ServicePrice)
	})
}

func TestExecute_MinuteDurationEndTime(t *testing.T) {
	// Для длительности в одну минуту конец не уходит раньше начала
	f := newFixture()
	f.master.service.DurationMinutes = 5

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:04"), resp.EndTime)
}
