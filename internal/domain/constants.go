package domain

// Дефолтное расписание мастера
// Подставляется, когда мастер ещё не настроил собственный график,
// чтобы расчёт доступности никогда не работал с отсутствующей конфигурацией
const (
	DefaultOpeningTime     = "08:00"
	DefaultClosingTime     = "18:00"
	DefaultLunchStart      = "12:00"
	DefaultLunchEnd        = "13:00"
	DefaultSlotStepMinutes = 30
)

// Бизнес-ограничения
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 часов
	MinSlotStepMinutes        = 5
	MaxSlotStepMinutes        = 240
	MaxNotesLength            = 500
	MaxCancellationReasonLen  = 500
)

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, исключаемые из проверки пересечений
// Отменённая запись не занимает слот; все остальные статусы занимают
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
}

// ActiveStatuses статусы, участвующие в проверке пересечений
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusNoShow,
}
