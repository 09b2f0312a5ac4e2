package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	createAppointment "github.com/m04kA/Barbershop-BookingService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest тело запроса на создание записи.
// Время начала принимается без зоны и трактуется как местное время салона.
type CreateAppointmentRequest struct {
	ServiceID int64  `json:"service_id"`
	StartTime string `json:"start_time"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r CreateAppointmentRequest) ToUseCaseRequest(clientID int64) (createAppointment.Request, error) {
	startTime, err := time.ParseInLocation(domain.DateTimeFormat, r.StartTime, time.Local)
	if err != nil {
		return createAppointment.Request{}, fmt.Errorf("parse start_time: %w", err)
	}

	return createAppointment.Request{
		ClientID:  clientID,
		ServiceID: r.ServiceID,
		StartTime: startTime,
	}, nil
}
