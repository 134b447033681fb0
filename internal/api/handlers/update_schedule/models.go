package update_schedule

import "github.com/m04kA/Salon-BookingService/internal/service/schedule/models"

// UpdateScheduleRequest HTTP request model
// График сохраняется целиком - частичных обновлений нет
type UpdateScheduleRequest struct {
	OpeningTime string `json:"openingTime"` // "09:00"
	ClosingTime string `json:"closingTime"` // "19:00"

	LunchBreakEnabled bool   `json:"lunchBreakEnabled"`
	LunchStart        string `json:"lunchStart,omitempty"`
	LunchEnd          string `json:"lunchEnd,omitempty"`

	WorkingDays models.WorkingDaysDTO `json:"workingDays"`

	SlotStepMinutes int `json:"slotStepMinutes"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(userID, professionalID int64) *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		UserID:            userID,
		ProfessionalID:    professionalID,
		OpeningTime:       r.OpeningTime,
		ClosingTime:       r.ClosingTime,
		LunchBreakEnabled: r.LunchBreakEnabled,
		LunchStart:        r.LunchStart,
		LunchEnd:          r.LunchEnd,
		WorkingDays:       r.WorkingDays,
		SlotStepMinutes:   r.SlotStepMinutes,
	}
}
