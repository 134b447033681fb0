package get_professional_appointments

import (
	"context"

	"github.com/m04kA/Salon-BookingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetProfessionalAppointments(ctx context.Context, req *models.GetProfessionalAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
