package models

import (
	"time"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
)

// Service представление услуги для внешнего API
type Service struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Price           int64     `json:"price"`
	DurationMinutes int       `json:"duration_minutes"`
	Description     *string   `json:"description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateServiceInput данные для создания услуги
type CreateServiceInput struct {
	Name            string  `json:"name"`
	Price           int64   `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	Description     *string `json:"description,omitempty"`
}

// FromDomain конвертирует доменную услугу в API представление
func FromDomain(svc *domain.Service) *Service {
	return &Service{
		ID:              svc.ID,
		Name:            svc.Name,
		Price:           svc.Price,
		DurationMinutes: svc.DurationMinutes,
		Description:     svc.Description,
		CreatedAt:       svc.CreatedAt,
	}
}

// FromDomainList конвертирует список доменных услуг
func FromDomainList(services []*domain.Service) []*Service {
	result := make([]*Service, 0, len(services))
	for _, svc := range services {
		result = append(result, FromDomain(svc))
	}
	return result
}
