package models

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// Request модели

// GetScheduleRequest запрос на получение графика работы мастера
type GetScheduleRequest struct {
	ProfessionalID int64 `json:"professionalId"`
}

// UpdateScheduleRequest запрос на обновление графика работы мастера
// График сохраняется целиком - частичных обновлений нет
type UpdateScheduleRequest struct {
	UserID         int64 `json:"userId"`
	ProfessionalID int64 `json:"professionalId"`

	OpeningTime string `json:"openingTime"` // HH:MM
	ClosingTime string `json:"closingTime"` // HH:MM

	LunchBreakEnabled bool   `json:"lunchBreakEnabled"`
	LunchStart        string `json:"lunchStart,omitempty"`
	LunchEnd          string `json:"lunchEnd,omitempty"`

	WorkingDays WorkingDaysDTO `json:"workingDays"`

	SlotStepMinutes int `json:"slotStepMinutes"`
}

// WorkingDaysDTO флаги рабочих дней недели
type WorkingDaysDTO struct {
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`
}

// Response модели

// ScheduleResponse ответ с графиком работы мастера
// IsDefault = true, когда мастер ещё не сохранял график и вернулся график по умолчанию
type ScheduleResponse struct {
	ProfessionalID int64 `json:"professionalId"`

	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`

	LunchBreakEnabled bool   `json:"lunchBreakEnabled"`
	LunchStart        string `json:"lunchStart,omitempty"`
	LunchEnd          string `json:"lunchEnd,omitempty"`

	WorkingDays WorkingDaysDTO `json:"workingDays"`

	SlotStepMinutes int  `json:"slotStepMinutes"`
	IsDefault       bool `json:"isDefault"`

	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Методы конвертации

// ToDomainSchedule конвертирует запрос в domain модель
func (r *UpdateScheduleRequest) ToDomainSchedule() *domain.Schedule {
	return &domain.Schedule{
		ProfessionalID:    r.ProfessionalID,
		OpeningTime:       types.TimeString(r.OpeningTime),
		ClosingTime:       types.TimeString(r.ClosingTime),
		LunchBreakEnabled: r.LunchBreakEnabled,
		LunchStart:        types.TimeString(r.LunchStart),
		LunchEnd:          types.TimeString(r.LunchEnd),
		WorkingDays: domain.WorkingDays{
			Monday:    r.WorkingDays.Monday,
			Tuesday:   r.WorkingDays.Tuesday,
			Wednesday: r.WorkingDays.Wednesday,
			Thursday:  r.WorkingDays.Thursday,
			Friday:    r.WorkingDays.Friday,
			Saturday:  r.WorkingDays.Saturday,
			Sunday:    r.WorkingDays.Sunday,
		},
		SlotStepMinutes: r.SlotStepMinutes,
	}
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.Schedule, isDefault bool) *ScheduleResponse {
	if s == nil {
		return nil
	}

	resp := &ScheduleResponse{
		ProfessionalID:    s.ProfessionalID,
		OpeningTime:       s.OpeningTime.String(),
		ClosingTime:       s.ClosingTime.String(),
		LunchBreakEnabled: s.LunchBreakEnabled,
		WorkingDays: WorkingDaysDTO{
			Monday:    s.WorkingDays.Monday,
			Tuesday:   s.WorkingDays.Tuesday,
			Wednesday: s.WorkingDays.Wednesday,
			Thursday:  s.WorkingDays.Thursday,
			Friday:    s.WorkingDays.Friday,
			Saturday:  s.WorkingDays.Saturday,
			Sunday:    s.WorkingDays.Sunday,
		},
		SlotStepMinutes: s.SlotStepMinutes,
		IsDefault:       isDefault,
	}

	if s.LunchBreakEnabled {
		resp.LunchStart = s.LunchStart.String()
		resp.LunchEnd = s.LunchEnd.String()
	}

	if !isDefault && !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}
