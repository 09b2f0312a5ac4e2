package create_appointment

import (
	"time"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
)

// Request запрос на создание записи
type Request struct {
	ClientID  int64
	ServiceID int64
	StartTime time.Time
}

// Response созданная запись
type Response struct {
	Appointment *domain.Appointment
}
