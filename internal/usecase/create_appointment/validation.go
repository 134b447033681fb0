package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	// Мастер не может записаться сам к себе
	if req.ClientID == req.ProfessionalID {
		return ErrSelfBooking
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: durationMinutes must not be negative", ErrInvalidInput)
	}

	if req.Price != nil && *req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата записи не в прошлом
func validateDate(date time.Time, now time.Time) error {
	if domain.IsDateInPast(date, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateDuration проверяет, что длительность услуги в допустимых пределах
func validateDuration(durationMinutes int) error {
	if durationMinutes < domain.MinServiceDurationMinutes || durationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: %d minutes", ErrInvalidDuration, durationMinutes)
	}
	return nil
}
