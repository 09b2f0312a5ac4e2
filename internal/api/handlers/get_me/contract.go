package get_me

import (
	"context"

	"github.com/m04kA/Barbershop-BookingService/internal/service/users/models"
)

type UsersService interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
