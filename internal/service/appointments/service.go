package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/Barbershop-BookingService/internal/service/appointments/models"
)

// Service операции над существующими записями: просмотр, отмена,
// расписание дня. Проверки доступа выполняются здесь.
type Service struct {
	repo   AppointmentRepository
	logger Logger
}

func NewService(repo AppointmentRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetByID возвращает запись. Клиент видит только свои записи,
// администратор - любые.
func (s *Service) GetByID(ctx context.Context, userID int64, role domain.UserRole, appointmentID int64) (*models.Appointment, error) {
	appt, err := s.getAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if appt.ClientID != userID && role != domain.RoleAdmin {
		s.logger.Warn("appointments: user %d denied access to appointment %d", userID, appointmentID)
		return nil, ErrPermissionDenied
	}

	return models.FromDomain(appt), nil
}

// GetUserAppointments возвращает записи клиента, опционально по статусу
func (s *Service) GetUserAppointments(ctx context.Context, clientID int64, status *domain.AppointmentStatus) ([]*models.Appointment, error) {
	appointments, err := s.repo.GetByClientID(ctx, clientID, status)
	if err != nil {
		s.logger.Error("appointments: failed to load appointments for client %d: %v", clientID, err)
		return nil, fmt.Errorf("%w: get client appointments: %v", ErrInternal, err)
	}

	return models.FromDomainList(appointments), nil
}

// GetDaySchedule возвращает все активные записи на календарный день.
// Только для администратора.
func (s *Service) GetDaySchedule(ctx context.Context, role domain.UserRole, date time.Time) ([]*models.Appointment, error) {
	if role != domain.RoleAdmin {
		return nil, ErrPermissionDenied
	}

	appointments, err := s.repo.GetActiveByDateRange(ctx, domain.DayStart(date), domain.DayEnd(date))
	if err != nil {
		s.logger.Error("appointments: failed to load schedule for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: get day schedule: %v", ErrInternal, err)
	}

	return models.FromDomainList(appointments), nil
}

// Cancel отменяет запись. Клиент отменяет только свои записи,
// администратор - любые. Повторная отмена невозможна.
func (s *Service) Cancel(ctx context.Context, userID int64, role domain.UserRole, appointmentID int64) (*models.Appointment, error) {
	appt, err := s.getAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if appt.ClientID != userID && role != domain.RoleAdmin {
		s.logger.Warn("appointments: user %d denied cancel of appointment %d", userID, appointmentID)
		return nil, ErrPermissionDenied
	}

	if !appt.CanBeCancelled() {
		return nil, fmt.Errorf("%w: appointment %d is %s", ErrNotCancellable, appointmentID, appt.Status)
	}

	if err := s.repo.Cancel(ctx, appointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("appointments: failed to cancel appointment %d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: cancel appointment: %v", ErrInternal, err)
	}

	s.logger.Info("appointments: appointment %d cancelled by user %d", appointmentID, userID)

	// Перечитываем, чтобы вернуть актуальные статус и cancelled_at
	cancelled, err := s.getAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	return models.FromDomain(cancelled), nil
}

func (s *Service) getAppointment(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("appointments: failed to get appointment %d: %v", id, err)
		return nil, fmt.Errorf("%w: get appointment: %v", ErrInternal, err)
	}
	return appt, nil
}
