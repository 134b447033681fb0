package create_appointment

import (
	"time"

	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID        int64            // ID клиента (из X-User-ID)
	ProfessionalID  int64            // ID мастера
	ServiceID       int64            // ID услуги
	Date            time.Time        // Дата записи (без времени)
	StartTime       types.TimeString // Время начала (например, "10:00")
	DurationMinutes int              // Длительность; 0 = взять из каталога услуг
	Price           *float64         // Цена; nil = взять из каталога услуг
	Notes           *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	ClientID        int64            // ID клиента
	ProfessionalID  int64            // ID мастера
	ServiceID       int64            // ID услуги
	Date            time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи

	// Денормализованные данные услуги
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги

	Notes *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
