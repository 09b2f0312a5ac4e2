package domain

import "time"

// Service represents a service from the barbershop catalog
type Service struct {
	ID              int64
	Name            string
	Price           int64
	DurationMinutes int
	Description     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServicesFilter фильтр для постраничного получения каталога услуг
type ServicesFilter struct {
	Offset uint64
	Limit  uint64
}
