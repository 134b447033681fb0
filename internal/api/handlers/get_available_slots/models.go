package get_available_slots

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/Salon-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель доступного слота
type SlotResponse struct {
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ProfessionalID  int64          `json:"professionalId"`
	ServiceID       int64          `json:"serviceId"`
	Date            string         `json:"date"` // "2026-03-15"
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
	Degraded        bool           `json:"degraded"`
}

// ToUseCaseRequest формирует запрос use case из параметров HTTP запроса
func ToUseCaseRequest(professionalID, serviceID int64, dateStr string, durationMinutes int) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ProfessionalID:  professionalID,
		ServiceID:       serviceID,
		Date:            date,
		DurationMinutes: durationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
		})
	}

	return &AvailableSlotsResponse{
		ProfessionalID:  resp.ProfessionalID,
		ServiceID:       resp.ServiceID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
		Degraded:        resp.Degraded,
	}
}
