package login

import (
	"context"

	"github.com/m04kA/Barbershop-BookingService/internal/service/users/models"
)

type UsersService interface {
	Login(ctx context.Context, email, password string) (*models.Token, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
