package domain

import (
	"time"

	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// Движок расчёта доступности слотов
// Чистые функции без состояния и I/O: одинаковые входные данные
// всегда дают одинаковый результат

// AdjustedDurationMinutes возвращает длительность услуги, уменьшенную на одну минуту
// Уменьшение намеренное: услуга не должна визуально занимать первую минуту
// следующего слота сетки, иначе записи "впритык" становятся невозможными
func AdjustedDurationMinutes(durationMinutes int) int {
	adjusted := durationMinutes - 1
	if adjusted < 1 {
		return 1
	}
	return adjusted
}

// AppointmentEndTime вычисляет время окончания записи по скорректированной длительности
// Сохранённая запись получает тот же конец, который проверял движок
func AppointmentEndTime(start types.TimeString, durationMinutes int) (types.TimeString, error) {
	return start.AddMinutes(AdjustedDurationMinutes(durationMinutes))
}

// CheckSlot проверяет доступность конкретного времени начала
// Проверки выполняются по порядку, первая сработавшая определяет причину отказа:
//  1. день недели не рабочий
//  2. время уже прошло (только для сегодняшней даты, граница включительно)
//  3. слот выходит за рабочие часы
//  4. пересечение с обеденным перерывом
//  5. пересечение с существующей записью
func CheckSlot(
	slot types.TimeString,
	schedule *Schedule,
	date time.Time,
	durationMinutes int,
	now time.Time,
	appointments []*Appointment,
) TimeSlot {
	// 1. Рабочий день
	if !schedule.WorksOn(date.Weekday()) {
		return UnavailableSlot(slot, ReasonDayNotWorking)
	}

	// 2. Прошедшее время - только если запрошенная дата сегодня
	// Нестрогое сравнение: текущая (идущая) минута тоже исключается
	if IsSameDay(date, now) {
		current := types.NewTimeString(now)
		if !slot.IsAfter(current) {
			return UnavailableSlot(slot, ReasonTimeInPast)
		}
	}

	// 3. Рабочие часы
	// Конец слота считается по скорректированной длительности; услуги
	// не переходят через полночь, выход за сутки трактуется как выход за часы работы
	adjustedEnd, err := AppointmentEndTime(slot, durationMinutes)
	if err != nil {
		return UnavailableSlot(slot, ReasonOutsideHours)
	}
	if slot.IsBefore(schedule.OpeningTime) || adjustedEnd.IsAfter(schedule.ClosingTime) {
		return UnavailableSlot(slot, ReasonOutsideHours)
	}

	// 4. Обеденный перерыв
	// Конец обеда уменьшается на минуту, чтобы запись могла начаться ровно
	// в момент номинального окончания обеда
	if schedule.LunchBreakEnabled {
		lunchEndAdjusted, err := schedule.LunchEnd.AddMinutes(-1)
		if err == nil && slot.IsBefore(lunchEndAdjusted) && adjustedEnd.IsAfter(schedule.LunchStart) {
			return UnavailableSlot(slot, ReasonLunchConflict)
		}
	}

	// 5. Пересечение с записями
	// Стандартный полуинтервальный тест: a.start < b.end AND a.end > b.start
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if slot.IsBefore(appt.EndTime) && adjustedEnd.IsAfter(appt.StartTime) {
			return UnavailableSlot(slot, ReasonBookingConflict)
		}
	}

	return AvailableSlot(slot)
}

// GenerateAvailableSlots строит список доступных времён начала на дату
// Сетка идёт от открытия до закрытия с шагом schedule.SlotStepMinutes,
// независимо от длительности услуги; возвращаются только доступные слоты
// в порядке возрастания времени
func GenerateAvailableSlots(
	schedule *Schedule,
	date time.Time,
	durationMinutes int,
	now time.Time,
	appointments []*Appointment,
) []TimeSlot {
	step := schedule.SlotStepMinutes
	if step <= 0 {
		step = DefaultSlotStepMinutes
	}

	slots := make([]TimeSlot, 0)

	for tick := schedule.OpeningTime; tick.IsBefore(schedule.ClosingTime); {
		slot := CheckSlot(tick, schedule, date, durationMinutes, now, appointments)
		if slot.Available {
			slots = append(slots, slot)
		}

		next, err := tick.AddMinutes(step)
		if err != nil {
			// Сетка дошла до конца суток
			break
		}
		tick = next
	}

	return slots
}

// IsSameDay проверяет, что две даты относятся к одному календарному дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast проверяет, что дата раньше сегодняшнего дня
func IsDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
