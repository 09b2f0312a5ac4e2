package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	serviceRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/service"
	"github.com/m04kA/Barbershop-BookingService/internal/service/catalog/models"
)

// Service каталог услуг барбершопа. Чтение публичное,
// изменение - только для администратора.
type Service struct {
	repo   ServiceRepository
	logger Logger
}

func NewService(repo ServiceRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create добавляет услугу в каталог. Только для администратора.
func (s *Service) Create(ctx context.Context, role domain.UserRole, input models.CreateServiceInput) (*models.Service, error) {
	if role != domain.RoleAdmin {
		return nil, ErrPermissionDenied
	}

	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	svc := &domain.Service{
		Name:            strings.TrimSpace(input.Name),
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
		Description:     input.Description,
	}

	created, err := s.repo.Create(ctx, svc)
	if err != nil {
		s.logger.Error("catalog: failed to create service %q: %v", input.Name, err)
		return nil, fmt.Errorf("%w: create service: %v", ErrInternal, err)
	}

	s.logger.Info("catalog: created service %d %q", created.ID, created.Name)

	return models.FromDomain(created), nil
}

// GetByID возвращает услугу по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.Service, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("catalog: failed to get service %d: %v", id, err)
		return nil, fmt.Errorf("%w: get service: %v", ErrInternal, err)
	}

	return models.FromDomain(svc), nil
}

// List возвращает страницу каталога услуг
func (s *Service) List(ctx context.Context, filter domain.ServicesFilter) ([]*models.Service, error) {
	if filter.Limit == 0 || filter.Limit > domain.MaxServicesPageSize {
		filter.Limit = domain.MaxServicesPageSize
	}

	services, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("catalog: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: list services: %v", ErrInternal, err)
	}

	return models.FromDomainList(services), nil
}

func validateCreateInput(input models.CreateServiceInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if input.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if input.DurationMinutes < domain.MinServiceDurationMinutes || input.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration_minutes must be between %d and %d",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}

	return nil
}
