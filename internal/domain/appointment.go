package domain

import (
	"time"

	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// AppointmentStatus статус записи к мастеру
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment запись клиента к мастеру
// Записи никогда не удаляются, только переводятся между статусами
type Appointment struct {
	ID             int64
	ProfessionalID int64
	ClientID       int64
	ServiceID      int64

	Date            time.Time        // Дата записи (без времени)
	StartTime       types.TimeString // Время начала, HH:MM
	EndTime         types.TimeString // Время окончания, HH:MM (StartTime < EndTime, в рамках одного дня)
	DurationMinutes int

	Status AppointmentStatus

	// Денормализованные данные услуги для истории
	ServiceName  string
	ServicePrice float64

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если запись занимает слот
// Только отменённые записи освобождают время мастера
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// IsCancelled возвращает true, если запись отменена
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanBeCancelled возвращает true, если запись можно отменить
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanTransitionTo проверяет допустимость перевода записи в новый статус
// pending -> confirmed | cancelled | no_show
// confirmed -> completed | cancelled | no_show
// completed, cancelled, no_show - терминальные статусы
func (a *Appointment) CanTransitionTo(status AppointmentStatus) bool {
	switch a.Status {
	case StatusPending:
		return status == StatusConfirmed || status == StatusCancelled || status == StatusNoShow
	case StatusConfirmed:
		return status == StatusCompleted || status == StatusCancelled || status == StatusNoShow
	default:
		return false
	}
}

// ProfessionalAppointmentsFilter фильтр для получения записей мастера
type ProfessionalAppointmentsFilter struct {
	ProfessionalID  int64              // Обязательный параметр
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые записи
}
