package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/pkg/types"
)

var (
	// Понедельник и воскресенье одной недели
	monday = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	// Утро за день до запрашиваемой даты: проверка прошедшего времени не срабатывает
	dayBefore = time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
)

func confirmedAppointment(start, end types.TimeString) *Appointment {
	return &Appointment{
		ProfessionalID: 1,
		ClientID:       2,
		Date:           monday,
		StartTime:      start,
		EndTime:        end,
		Status:         StatusConfirmed,
	}
}

func TestAdjustedDurationMinutes(t *testing.T) {
	assert.Equal(t, 59, AdjustedDurationMinutes(60))
	assert.Equal(t, 29, AdjustedDurationMinutes(30))
	assert.Equal(t, 1, AdjustedDurationMinutes(2))
	assert.Equal(t, 1, AdjustedDurationMinutes(1))
	assert.Equal(t, 1, AdjustedDurationMinutes(0))
}

func TestAppointmentEndTime(t *testing.T) {
	end, err := AppointmentEndTime("10:00", 60)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:59"), end)

	end, err = AppointmentEndTime("10:00", 30)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:29"), end)

	_, err = AppointmentEndTime("23:30", 60)
	assert.Error(t, err)
}

func TestCheckSlot_DayNotWorking(t *testing.T) {
	schedule := DefaultSchedule(1)

	slot := CheckSlot("10:00", schedule, sunday, 30, dayBefore, nil)

	assert.False(t, slot.Available)
	assert.Equal(t, ReasonDayNotWorking, slot.Reason)
}

func TestCheckSlot_TimeInPast(t *testing.T) {
	schedule := DefaultSchedule(1)
	// Сейчас 14:05 запрашиваемого дня
	now := time.Date(2026, 3, 16, 14, 5, 0, 0, time.UTC)

	t.Run("earlier slot rejected", func(t *testing.T) {
		slot := CheckSlot("14:00", schedule, monday, 30, now, nil)
		assert.False(t, slot.Available)
		assert.Equal(t, ReasonTimeInPast, slot.Reason)
	})

	t.Run("current minute rejected", func(t *testing.T) {
		slot := CheckSlot("14:05", schedule, monday, 30, now, nil)
		assert.False(t, slot.Available)
		assert.Equal(t, ReasonTimeInPast, slot.Reason)
	})

	t.Run("future slot allowed", func(t *testing.T) {
		slot := CheckSlot("14:30", schedule, monday, 30, now, nil)
		assert.True(t, slot.Available)
	})

	t.Run("not applied for future date", func(t *testing.T) {
		// Та же стена часов, но дата запроса завтра
		tuesday := monday.AddDate(0, 0, 1)
		slot := CheckSlot("08:00", schedule, tuesday, 30, now, nil)
		assert.True(t, slot.Available)
	})
}

func TestCheckSlot_OutsideHours(t *testing.T) {
	schedule := DefaultSchedule(1)

	tests := []struct {
		name      string
		slot      types.TimeString
		duration  int
		available bool
	}{
		{name: "before opening", slot: "07:30", duration: 30, available: false},
		{name: "at opening", slot: "08:00", duration: 30, available: true},
		{name: "last fitting hour slot", slot: "17:00", duration: 60, available: true},
		{name: "hour slot spills past closing", slot: "17:30", duration: 60, available: false},
		{name: "half hour slot at 17:30 fits", slot: "17:30", duration: 30, available: true},
		{name: "at closing", slot: "18:00", duration: 30, available: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := CheckSlot(tt.slot, schedule, monday, tt.duration, dayBefore, nil)
			assert.Equal(t, tt.available, slot.Available)
			if !tt.available {
				assert.Equal(t, ReasonOutsideHours, slot.Reason)
			}
		})
	}

	t.Run("duration past midnight", func(t *testing.T) {
		nightSchedule := DefaultSchedule(1)
		nightSchedule.ClosingTime = "23:59"
		nightSchedule.LunchBreakEnabled = false

		slot := CheckSlot("23:30", nightSchedule, monday, 60, dayBefore, nil)
		assert.False(t, slot.Available)
		assert.Equal(t, ReasonOutsideHours, slot.Reason)
	})
}

func TestCheckSlot_LunchConflict(t *testing.T) {
	// Обед 12:00-13:00
	schedule := DefaultSchedule(1)

	tests := []struct {
		name      string
		slot      types.TimeString
		duration  int
		available bool
	}{
		{name: "inside lunch", slot: "12:00", duration: 30, available: false},
		{name: "second half of lunch", slot: "12:30", duration: 30, available: false},
		{name: "ends right before lunch", slot: "11:30", duration: 30, available: true},
		{name: "hour slot runs into lunch", slot: "11:30", duration: 60, available: false},
		{name: "starts at lunch end", slot: "13:00", duration: 30, available: true},
		{name: "one minute before lunch end", slot: "12:59", duration: 30, available: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := CheckSlot(tt.slot, schedule, monday, tt.duration, dayBefore, nil)
			assert.Equal(t, tt.available, slot.Available)
			if !tt.available {
				assert.Equal(t, ReasonLunchConflict, slot.Reason)
			}
		})
	}

	t.Run("lunch disabled", func(t *testing.T) {
		noLunch := DefaultSchedule(1)
		noLunch.LunchBreakEnabled = false

		slot := CheckSlot("12:00", noLunch, monday, 30, dayBefore, nil)
		assert.True(t, slot.Available)
	})
}

func TestCheckSlot_BookingConflict(t *testing.T) {
	schedule := DefaultSchedule(1)
	// Существующая часовая запись 10:00-10:59
	existing := []*Appointment{confirmedAppointment("10:00", "10:59")}

	tests := []struct {
		name      string
		slot      types.TimeString
		duration  int
		available bool
	}{
		{name: "same start", slot: "10:00", duration: 60, available: false},
		{name: "overlaps from inside", slot: "10:30", duration: 60, available: false},
		{name: "hour slot ending into booking", slot: "09:30", duration: 60, available: false},
		{name: "ends right before booking", slot: "09:00", duration: 60, available: true},
		{name: "starts right after booking", slot: "11:00", duration: 60, available: true},
		{name: "short slot before booking", slot: "09:30", duration: 30, available: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := CheckSlot(tt.slot, schedule, monday, tt.duration, dayBefore, existing)
			assert.Equal(t, tt.available, slot.Available)
			if !tt.available {
				assert.Equal(t, ReasonBookingConflict, slot.Reason)
			}
		})
	}

	t.Run("cancelled appointment does not block", func(t *testing.T) {
		cancelled := confirmedAppointment("10:00", "10:59")
		cancelled.Status = StatusCancelled

		slot := CheckSlot("10:00", schedule, monday, 60, dayBefore, []*Appointment{cancelled})
		assert.True(t, slot.Available)
	})

	t.Run("pending appointment blocks", func(t *testing.T) {
		pending := confirmedAppointment("10:00", "10:59")
		pending.Status = StatusPending

		slot := CheckSlot("10:00", schedule, monday, 60, dayBefore, []*Appointment{pending})
		assert.False(t, slot.Available)
	})
}

func TestCheckSlot_ReasonPriority(t *testing.T) {
	schedule := DefaultSchedule(1)
	existing := []*Appointment{confirmedAppointment("10:00", "10:59")}

	// Воскресенье перекрывает все остальные причины
	slot := CheckSlot("10:00", schedule, sunday, 60, dayBefore, existing)
	assert.Equal(t, ReasonDayNotWorking, slot.Reason)

	// Прошедшее время важнее конфликта с записью
	now := time.Date(2026, 3, 16, 11, 0, 0, 0, time.UTC)
	slot = CheckSlot("10:00", schedule, monday, 60, now, existing)
	assert.Equal(t, ReasonTimeInPast, slot.Reason)
}

func TestGenerateAvailableSlots(t *testing.T) {
	t.Run("full working day with half hour service", func(t *testing.T) {
		schedule := DefaultSchedule(1)

		slots := GenerateAvailableSlots(schedule, monday, 30, dayBefore, nil)

		// Сетка 08:00-17:30 даёт 20 тиков, обед выбивает 12:00 и 12:30
		assert.Len(t, slots, 18)
		assert.Equal(t, types.TimeString("08:00"), slots[0].StartTime)
		assert.Equal(t, types.TimeString("17:30"), slots[len(slots)-1].StartTime)
	})

	t.Run("hour service loses pre-lunch and last tick", func(t *testing.T) {
		schedule := DefaultSchedule(1)

		slots := GenerateAvailableSlots(schedule, monday, 60, dayBefore, nil)

		// Дополнительно выбиты 11:30 (заезжает на обед) и 17:30 (за закрытие)
		assert.Len(t, slots, 16)
		for _, slot := range slots {
			assert.NotEqual(t, types.TimeString("11:30"), slot.StartTime)
			assert.NotEqual(t, types.TimeString("17:30"), slot.StartTime)
		}
	})

	t.Run("existing hour booking blocks nearby ticks", func(t *testing.T) {
		schedule := DefaultSchedule(1)
		existing := []*Appointment{confirmedAppointment("10:00", "10:59")}

		slots := GenerateAvailableSlots(schedule, monday, 60, dayBefore, existing)

		blocked := map[types.TimeString]bool{"09:30": true, "10:00": true, "10:30": true}
		for _, slot := range slots {
			assert.False(t, blocked[slot.StartTime], "slot %s must be blocked", slot.StartTime)
		}

		// Слот сразу после записи доступен
		found := false
		for _, slot := range slots {
			if slot.StartTime.Equal("11:00") {
				found = true
			}
		}
		assert.True(t, found, "slot 11:00 must be available")
	})

	t.Run("non working day yields no slots", func(t *testing.T) {
		schedule := DefaultSchedule(1)

		slots := GenerateAvailableSlots(schedule, sunday, 30, dayBefore, nil)

		assert.Empty(t, slots)
	})

	t.Run("custom step changes grid", func(t *testing.T) {
		schedule := DefaultSchedule(1)
		schedule.SlotStepMinutes = 60
		schedule.LunchBreakEnabled = false

		slots := GenerateAvailableSlots(schedule, monday, 30, dayBefore, nil)

		// Сетка 08:00-17:00 с шагом час
		assert.Len(t, slots, 10)
		assert.Equal(t, types.TimeString("08:00"), slots[0].StartTime)
		assert.Equal(t, types.TimeString("09:00"), slots[1].StartTime)
	})

	t.Run("zero step falls back to default", func(t *testing.T) {
		schedule := DefaultSchedule(1)
		schedule.SlotStepMinutes = 0

		slots := GenerateAvailableSlots(schedule, monday, 30, dayBefore, nil)

		assert.Len(t, slots, 18)
	})

	t.Run("deterministic and ordered", func(t *testing.T) {
		schedule := DefaultSchedule(1)
		existing := []*Appointment{confirmedAppointment("14:00", "14:59")}

		first := GenerateAvailableSlots(schedule, monday, 30, dayBefore, existing)
		second := GenerateAvailableSlots(schedule, monday, 30, dayBefore, existing)

		assert.Equal(t, first, second)

		for i := 1; i < len(first); i++ {
			assert.True(t, first[i-1].StartTime.IsBefore(first[i].StartTime))
		}
	})

	t.Run("all returned slots are available", func(t *testing.T) {
		schedule := DefaultSchedule(1)
		existing := []*Appointment{confirmedAppointment("09:00", "09:29")}

		slots := GenerateAvailableSlots(schedule, monday, 30, dayBefore, existing)

		for _, slot := range slots {
			assert.True(t, slot.Available)
			assert.Empty(t, slot.Reason)
		}
	})
}

func TestIsSameDay(t *testing.T) {
	assert.True(t, IsSameDay(monday, monday.Add(14*time.Hour)))
	assert.False(t, IsSameDay(monday, sunday))
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2026, 3, 16, 23, 0, 0, 0, time.UTC)

	assert.True(t, IsDateInPast(sunday, now))
	// Сегодняшний день не в прошлом, даже поздно вечером
	assert.False(t, IsDateInPast(monday, now))
	assert.False(t, IsDateInPast(monday.AddDate(0, 0, 1), now))
}
