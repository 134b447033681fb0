package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Salon-BookingService/pkg/types"
)

var (
	// ErrInvalidWorkingHours возвращается, когда время открытия не раньше времени закрытия
	ErrInvalidWorkingHours = errors.New("domain: opening time must be before closing time")

	// ErrInvalidLunchBreak возвращается, когда обеденный перерыв выходит за рабочие часы
	// или его начало не раньше конца
	ErrInvalidLunchBreak = errors.New("domain: lunch break must fit inside working hours")

	// ErrInvalidSlotStep возвращается при недопустимом шаге сетки слотов
	ErrInvalidSlotStep = errors.New("domain: invalid slot step")
)

// WorkingDays флаги рабочих дней недели
type WorkingDays struct {
	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
	Sunday    bool
}

// Schedule недельный график работы мастера
// Все времена - naive wall-clock HH:MM в локальной таймзоне мастера,
// сравниваются без какой-либо конвертации в UTC
type Schedule struct {
	ID             int64
	ProfessionalID int64

	OpeningTime types.TimeString
	ClosingTime types.TimeString

	LunchBreakEnabled bool
	LunchStart        types.TimeString
	LunchEnd          types.TimeString

	WorkingDays WorkingDays

	// Шаг сетки слотов в минутах; не зависит от длительности услуги
	SlotStepMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultSchedule возвращает синтетический график по умолчанию:
// 08:00-18:00, обед 12:00-13:00, все дни кроме воскресенья, шаг 30 минут
// Подставляется, когда у мастера нет сохранённого графика или чтение не удалось
func DefaultSchedule(professionalID int64) *Schedule {
	return &Schedule{
		ProfessionalID:    professionalID,
		OpeningTime:       types.TimeString(DefaultOpeningTime),
		ClosingTime:       types.TimeString(DefaultClosingTime),
		LunchBreakEnabled: true,
		LunchStart:        types.TimeString(DefaultLunchStart),
		LunchEnd:          types.TimeString(DefaultLunchEnd),
		WorkingDays: WorkingDays{
			Monday:    true,
			Tuesday:   true,
			Wednesday: true,
			Thursday:  true,
			Friday:    true,
			Saturday:  true,
			Sunday:    false,
		},
		SlotStepMinutes: DefaultSlotStepMinutes,
	}
}

// WorksOn возвращает true, если указанный день недели включён в график
func (s *Schedule) WorksOn(weekday time.Weekday) bool {
	switch weekday {
	case time.Monday:
		return s.WorkingDays.Monday
	case time.Tuesday:
		return s.WorkingDays.Tuesday
	case time.Wednesday:
		return s.WorkingDays.Wednesday
	case time.Thursday:
		return s.WorkingDays.Thursday
	case time.Friday:
		return s.WorkingDays.Friday
	case time.Saturday:
		return s.WorkingDays.Saturday
	case time.Sunday:
		return s.WorkingDays.Sunday
	default:
		return false
	}
}

// Validate проверяет инварианты графика:
// OpeningTime < ClosingTime; при включённом обеде
// OpeningTime <= LunchStart < LunchEnd <= ClosingTime
func (s *Schedule) Validate() error {
	if err := s.OpeningTime.Validate(); err != nil {
		return fmt.Errorf("%w: opening time: %v", ErrInvalidWorkingHours, err)
	}
	if err := s.ClosingTime.Validate(); err != nil {
		return fmt.Errorf("%w: closing time: %v", ErrInvalidWorkingHours, err)
	}
	if !s.OpeningTime.IsBefore(s.ClosingTime) {
		return ErrInvalidWorkingHours
	}

	if s.SlotStepMinutes < MinSlotStepMinutes || s.SlotStepMinutes > MaxSlotStepMinutes {
		return fmt.Errorf("%w: %d minutes", ErrInvalidSlotStep, s.SlotStepMinutes)
	}

	if !s.LunchBreakEnabled {
		return nil
	}

	if err := s.LunchStart.Validate(); err != nil {
		return fmt.Errorf("%w: lunch start: %v", ErrInvalidLunchBreak, err)
	}
	if err := s.LunchEnd.Validate(); err != nil {
		return fmt.Errorf("%w: lunch end: %v", ErrInvalidLunchBreak, err)
	}
	if s.LunchStart.IsBefore(s.OpeningTime) ||
		!s.LunchStart.IsBefore(s.LunchEnd) ||
		s.LunchEnd.IsAfter(s.ClosingTime) {
		return ErrInvalidLunchBreak
	}

	return nil
}
