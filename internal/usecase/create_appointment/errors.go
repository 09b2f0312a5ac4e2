package create_appointment

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("create_appointment.usecase: invalid input")

	// ErrServiceNotFound услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment.usecase: service not found")

	// ErrOutsideBusinessHours запись не помещается в рабочие часы
	ErrOutsideBusinessHours = errors.New("create_appointment.usecase: appointment outside business hours")

	// ErrSlotConflict интервал пересекается с существующей активной записью
	ErrSlotConflict = errors.New("create_appointment.usecase: time slot already taken")

	// ErrInternal внутренняя ошибка (БД недоступна и т.п.)
	ErrInternal = errors.New("create_appointment.usecase: internal error")
)
