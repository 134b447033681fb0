package masterservice

// Professional модель мастера из MasterService
type Professional struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	SalonID     *int64 `json:"salon_id,omitempty"`
	Specialty   string `json:"specialty"`
	Active      bool   `json:"active"`
}

// Service модель услуги мастера из MasterService
type Service struct {
	ID              int64    `json:"id"`
	ProfessionalID  int64    `json:"professional_id"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           *float64 `json:"price,omitempty"`
	Active          bool     `json:"active"`
}

// ErrorResponse модель ошибки от MasterService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
