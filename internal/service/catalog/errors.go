package catalog

import "errors"

var (
	// ErrServiceNotFound услуга не найдена
	ErrServiceNotFound = errors.New("catalog.service: service not found")

	// ErrPermissionDenied изменение каталога без прав администратора
	ErrPermissionDenied = errors.New("catalog.service: permission denied")

	// ErrInvalidInput невалидные данные услуги
	ErrInvalidInput = errors.New("catalog.service: invalid input")

	// ErrInternal внутренняя ошибка (БД недоступна и т.п.)
	ErrInternal = errors.New("catalog.service: internal error")
)
