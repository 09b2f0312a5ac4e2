package get_available_slots

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("get_available_slots.usecase: invalid input")

	// ErrServiceNotFound услуга не найдена
	ErrServiceNotFound = errors.New("get_available_slots.usecase: service not found")

	// ErrInternal внутренняя ошибка (БД недоступна и т.п.)
	ErrInternal = errors.New("get_available_slots.usecase: internal error")
)
