package appointments

import "errors"

var (
	// ErrAppointmentNotFound запись не найдена
	ErrAppointmentNotFound = errors.New("appointments.service: appointment not found")

	// ErrPermissionDenied доступ к чужой записи без прав администратора
	ErrPermissionDenied = errors.New("appointments.service: permission denied")

	// ErrNotCancellable запись уже отменена
	ErrNotCancellable = errors.New("appointments.service: appointment cannot be cancelled")

	// ErrInternal внутренняя ошибка (БД недоступна и т.п.)
	ErrInternal = errors.New("appointments.service: internal error")
)
