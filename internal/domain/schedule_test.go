package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchedule(t *testing.T) {
	schedule := DefaultSchedule(42)

	assert.Equal(t, int64(42), schedule.ProfessionalID)
	assert.Equal(t, "08:00", schedule.OpeningTime.String())
	assert.Equal(t, "18:00", schedule.ClosingTime.String())
	assert.True(t, schedule.LunchBreakEnabled)
	assert.Equal(t, "12:00", schedule.LunchStart.String())
	assert.Equal(t, "13:00", schedule.LunchEnd.String())
	assert.Equal(t, DefaultSlotStepMinutes, schedule.SlotStepMinutes)

	// Все дни рабочие, кроме воскресенья
	assert.True(t, schedule.WorkingDays.Monday)
	assert.True(t, schedule.WorkingDays.Saturday)
	assert.False(t, schedule.WorkingDays.Sunday)

	require.NoError(t, schedule.Validate())
}

func TestSchedule_WorksOn(t *testing.T) {
	schedule := DefaultSchedule(1)

	assert.True(t, schedule.WorksOn(time.Monday))
	assert.True(t, schedule.WorksOn(time.Saturday))
	assert.False(t, schedule.WorksOn(time.Sunday))

	schedule.WorkingDays.Wednesday = false
	assert.False(t, schedule.WorksOn(time.Wednesday))
}

func TestSchedule_Validate(t *testing.T) {
	valid := func() *Schedule {
		return DefaultSchedule(1)
	}

	t.Run("default is valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("opening after closing", func(t *testing.T) {
		s := valid()
		s.OpeningTime = "19:00"
		assert.ErrorIs(t, s.Validate(), ErrInvalidWorkingHours)
	})

	t.Run("opening equals closing", func(t *testing.T) {
		s := valid()
		s.OpeningTime = "18:00"
		assert.ErrorIs(t, s.Validate(), ErrInvalidWorkingHours)
	})

	t.Run("malformed opening time", func(t *testing.T) {
		s := valid()
		s.OpeningTime = "8am"
		assert.ErrorIs(t, s.Validate(), ErrInvalidWorkingHours)
	})

	t.Run("lunch starts before opening", func(t *testing.T) {
		s := valid()
		s.LunchStart = "07:00"
		assert.ErrorIs(t, s.Validate(), ErrInvalidLunchBreak)
	})

	t.Run("lunch ends after closing", func(t *testing.T) {
		s := valid()
		s.LunchStart = "17:00"
		s.LunchEnd = "19:00"
		assert.ErrorIs(t, s.Validate(), ErrInvalidLunchBreak)
	})

	t.Run("lunch start not before end", func(t *testing.T) {
		s := valid()
		s.LunchStart = "13:00"
		s.LunchEnd = "13:00"
		assert.ErrorIs(t, s.Validate(), ErrInvalidLunchBreak)
	})

	t.Run("disabled lunch skips lunch checks", func(t *testing.T) {
		s := valid()
		s.LunchBreakEnabled = false
		s.LunchStart = ""
		s.LunchEnd = ""
		assert.NoError(t, s.Validate())
	})

	t.Run("step too small", func(t *testing.T) {
		s := valid()
		s.SlotStepMinutes = 1
		assert.ErrorIs(t, s.Validate(), ErrInvalidSlotStep)
	})

	t.Run("step too large", func(t *testing.T) {
		s := valid()
		s.SlotStepMinutes = 600
		assert.ErrorIs(t, s.Validate(), ErrInvalidSlotStep)
	})
}
