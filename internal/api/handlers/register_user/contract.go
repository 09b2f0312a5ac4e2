package register_user

import (
	"context"

	"github.com/m04kA/Barbershop-BookingService/internal/service/users/models"
)

type UsersService interface {
	Register(ctx context.Context, input models.RegisterInput) (*models.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
