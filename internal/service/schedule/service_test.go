package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	schedRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/Salon-BookingService/internal/integrations/masterservice"
	"github.com/m04kA/Salon-BookingService/internal/service/schedule/models"
)

type fakeScheduleRepo struct {
	schedule *domain.Schedule
	getErr   error

	created   *domain.Schedule
	createErr error
}

func (r *fakeScheduleRepo) GetLatestByProfessional(_ context.Context, _ int64) (*domain.Schedule, error) {
	return r.schedule, r.getErr
}

func (r *fakeScheduleRepo) Create(_ context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.created = s

	saved := *s
	saved.ID = 7
	saved.CreatedAt = time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	saved.UpdatedAt = saved.CreatedAt
	return &saved, nil
}

type fakeMasterClient struct {
	professional *masterservice.Professional
	err          error
}

func (c *fakeMasterClient) GetProfessional(_ context.Context, _ int64) (*masterservice.Professional, error) {
	return c.professional, c.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validUpdateRequest() *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		UserID:         1,
		ProfessionalID: 1,
		OpeningTime:    "09:00",
		ClosingTime:    "19:00",

		LunchBreakEnabled: true,
		LunchStart:        "13:00",
		LunchEnd:          "14:00",

		WorkingDays: models.WorkingDaysDTO{
			Monday:  true,
			Tuesday: true,
			Friday:  true,
		},
		SlotStepMinutes: 15,
	}
}

func TestGetSchedule(t *testing.T) {
	t.Run("stored schedule", func(t *testing.T) {
		stored := domain.DefaultSchedule(1)
		stored.ID = 3
		stored.OpeningTime = "09:00"
		stored.UpdatedAt = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

		svc := NewService(&fakeScheduleRepo{schedule: stored}, &fakeMasterClient{}, nopLogger{})

		resp, err := svc.GetSchedule(context.Background(), &models.GetScheduleRequest{ProfessionalID: 1})
		require.NoError(t, err)
		assert.False(t, resp.IsDefault)
		assert.Equal(t, "09:00", resp.OpeningTime)
		require.NotNil(t, resp.UpdatedAt)
	})

	t.Run("default when nothing stored", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{getErr: schedRepo.ErrScheduleNotFound}, &fakeMasterClient{}, nopLogger{})

		resp, err := svc.GetSchedule(context.Background(), &models.GetScheduleRequest{ProfessionalID: 1})
		require.NoError(t, err)
		assert.True(t, resp.IsDefault)
		assert.Equal(t, "08:00", resp.OpeningTime)
		assert.Equal(t, "18:00", resp.ClosingTime)
		assert.True(t, resp.LunchBreakEnabled)
		assert.False(t, resp.WorkingDays.Sunday)
		assert.Equal(t, 30, resp.SlotStepMinutes)
		assert.Nil(t, resp.UpdatedAt)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{getErr: errors.New("connection refused")}, &fakeMasterClient{}, nopLogger{})

		_, err := svc.GetSchedule(context.Background(), &models.GetScheduleRequest{ProfessionalID: 1})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestUpdateSchedule(t *testing.T) {
	t.Run("success creates new version", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		svc := NewService(repo, &fakeMasterClient{
			professional: &masterservice.Professional{ID: 1, DisplayName: "Анна", Active: true},
		}, nopLogger{})

		resp, err := svc.UpdateSchedule(context.Background(), validUpdateRequest())
		require.NoError(t, err)

		assert.False(t, resp.IsDefault)
		assert.Equal(t, "09:00", resp.OpeningTime)
		assert.Equal(t, "13:00", resp.LunchStart)
		assert.Equal(t, 15, resp.SlotStepMinutes)
		require.NotNil(t, repo.created)
		assert.Equal(t, int64(1), repo.created.ProfessionalID)
	})

	t.Run("only the professional can update", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, &fakeMasterClient{}, nopLogger{})

		req := validUpdateRequest()
		req.UserID = 2

		_, err := svc.UpdateSchedule(context.Background(), req)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("professional not found", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, &fakeMasterClient{err: masterservice.ErrProfessionalNotFound}, nopLogger{})

		_, err := svc.UpdateSchedule(context.Background(), validUpdateRequest())
		assert.ErrorIs(t, err, ErrProfessionalNotFound)
	})

	t.Run("invalid working hours", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, &fakeMasterClient{
			professional: &masterservice.Professional{ID: 1, Active: true},
		}, nopLogger{})

		req := validUpdateRequest()
		req.OpeningTime = "19:00"
		req.ClosingTime = "09:00"

		_, err := svc.UpdateSchedule(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("lunch outside working hours", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, &fakeMasterClient{
			professional: &masterservice.Professional{ID: 1, Active: true},
		}, nopLogger{})

		req := validUpdateRequest()
		req.LunchStart = "08:00"
		req.LunchEnd = "08:30"

		_, err := svc.UpdateSchedule(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("invalid slot step", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, &fakeMasterClient{
			professional: &masterservice.Professional{ID: 1, Active: true},
		}, nopLogger{})

		req := validUpdateRequest()
		req.SlotStepMinutes = 3

		_, err := svc.UpdateSchedule(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{createErr: errors.New("connection refused")}, &fakeMasterClient{
			professional: &masterservice.Professional{ID: 1, Active: true},
		}, nopLogger{})

		_, err := svc.UpdateSchedule(context.Background(), validUpdateRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})
}
