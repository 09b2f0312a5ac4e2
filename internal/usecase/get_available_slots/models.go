package get_available_slots

import (
	"time"

	"github.com/m04kA/Barbershop-BookingService/pkg/types"
)

// Request запрос на получение свободных слотов
type Request struct {
	ServiceID int64
	Date      time.Time // Календарный день, время игнорируется
}

// Response список свободных слотов на день
type Response struct {
	ServiceID       int64              `json:"service_id"`
	Date            string             `json:"date"`
	DurationMinutes int                `json:"duration_minutes"`
	Slots           []types.TimeString `json:"available_slots"`
}
