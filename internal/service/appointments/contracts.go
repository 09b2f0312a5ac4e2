package appointments

import (
	"context"
	"time"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
)

// AppointmentRepository интерфейс для работы с хранилищем записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByClientID(ctx context.Context, clientID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	GetActiveByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
