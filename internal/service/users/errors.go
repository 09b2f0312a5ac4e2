package users

import "errors"

var (
	// ErrEmailExists email уже зарегистрирован
	ErrEmailExists = errors.New("users.service: email already registered")

	// ErrInvalidCredentials неверная пара email/пароль или пользователь неактивен
	ErrInvalidCredentials = errors.New("users.service: invalid credentials")

	// ErrUserNotFound пользователь не найден
	ErrUserNotFound = errors.New("users.service: user not found")

	// ErrInvalidInput невалидные данные регистрации
	ErrInvalidInput = errors.New("users.service: invalid input")

	// ErrInternal внутренняя ошибка (БД недоступна и т.п.)
	ErrInternal = errors.New("users.service: internal error")
)
