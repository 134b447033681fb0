package domain

import "github.com/m04kA/Salon-BookingService/pkg/types"

// UnavailableReason причина недоступности слота
type UnavailableReason string

const (
	ReasonDayNotWorking   UnavailableReason = "day_not_working"
	ReasonTimeInPast      UnavailableReason = "time_in_past"
	ReasonOutsideHours    UnavailableReason = "outside_hours"
	ReasonLunchConflict   UnavailableReason = "lunch_conflict"
	ReasonBookingConflict UnavailableReason = "booking_conflict"
)

// TimeSlot кандидат на время начала записи
// Транзиентная модель: пересчитывается при каждом запросе и никогда не сохраняется
type TimeSlot struct {
	StartTime types.TimeString
	Available bool
	Reason    UnavailableReason // Заполнена только при Available == false
}

// AvailableSlot создает доступный слот
func AvailableSlot(start types.TimeString) TimeSlot {
	return TimeSlot{StartTime: start, Available: true}
}

// UnavailableSlot создает недоступный слот с причиной
func UnavailableSlot(start types.TimeString, reason UnavailableReason) TimeSlot {
	return TimeSlot{StartTime: start, Available: false, Reason: reason}
}
