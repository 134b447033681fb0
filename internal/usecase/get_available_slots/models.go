package get_available_slots

import (
	"time"

	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProfessionalID  int64     // ID мастера
	ServiceID       int64     // ID услуги
	Date            time.Time // Дата для расчёта слотов (без времени)
	DurationMinutes int       // Длительность услуги; 0 = взять из каталога услуг
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	ProfessionalID  int64     // ID мастера
	ServiceID       int64     // ID услуги
	DurationMinutes int       // Использованная длительность услуги
	Slots           []Slot    // Список доступных слотов по возрастанию времени

	// Degraded выставляется, когда записи мастера не удалось загрузить
	// и расчёт выполнен по пустому списку: слоты могут быть излишне
	// оптимистичны, окончательную проверку выполнит создание записи
	Degraded bool
}

// Slot модель доступного временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность услуги в минутах
}
