package users

import (
	"context"
	"time"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
)

// UserRepository интерфейс для работы с хранилищем пользователей
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TokenIssuer интерфейс для выпуска access-токенов
type TokenIssuer interface {
	Generate(userID int64, role string) (string, error)
	TTL() time.Duration
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
