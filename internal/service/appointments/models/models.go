package models

import (
	"time"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
)

// Appointment представление записи для внешнего API
type Appointment struct {
	ID              int64      `json:"id"`
	ClientID        int64      `json:"client_id"`
	ServiceID       int64      `json:"service_id"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         time.Time  `json:"end_time"`
	DurationMinutes int        `json:"duration_minutes"`
	Status          string     `json:"status"`
	ServiceName     string     `json:"service_name"`
	ServicePrice    int64      `json:"service_price"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// FromDomain конвертирует доменную запись в API представление
func FromDomain(appt *domain.Appointment) *Appointment {
	return &Appointment{
		ID:              appt.ID,
		ClientID:        appt.ClientID,
		ServiceID:       appt.ServiceID,
		StartTime:       appt.StartTime,
		EndTime:         appt.EndTime(),
		DurationMinutes: appt.DurationMinutes,
		Status:          string(appt.Status),
		ServiceName:     appt.ServiceName,
		ServicePrice:    appt.ServicePrice,
		CancelledAt:     appt.CancelledAt,
		CreatedAt:       appt.CreatedAt,
	}
}

// FromDomainList конвертирует список доменных записей
func FromDomainList(appointments []*domain.Appointment) []*Appointment {
	result := make([]*Appointment, 0, len(appointments))
	for _, appt := range appointments {
		result = append(result, FromDomain(appt))
	}
	return result
}
