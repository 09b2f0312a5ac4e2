package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
)

// ServiceRepository интерфейс для получения данных об услуге
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// AppointmentRepository интерфейс для работы с записями
type AppointmentRepository interface {
	GetActiveByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// TransactionManager интерфейс для выполнения операций в транзакции.
// Проверка конфликтов и вставка должны быть атомарны, поэтому
// выполняются на уровне SERIALIZABLE.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
