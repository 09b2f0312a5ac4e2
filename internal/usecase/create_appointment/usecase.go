package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/service"
)

// UseCase создание записи клиента с защитой от двойного бронирования
type UseCase struct {
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	workingHours    domain.WorkingHours
	logger          Logger
}

func NewUseCase(
	serviceRepository ServiceRepository,
	appointmentRepository AppointmentRepository,
	txManager TransactionManager,
	workingHours domain.WorkingHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:     serviceRepository,
		appointmentRepo: appointmentRepository,
		txManager:       txManager,
		workingHours:    workingHours,
		logger:          logger,
	}
}

// Execute создает запись на услугу.
//
// 1. Валидируем запрос
// 2. Получаем услугу - длительность и цена фиксируются в записи
// 3. Проверяем, что интервал помещается в рабочие часы
// 4. В SERIALIZABLE транзакции: читаем записи дня с блокировкой,
//    проверяем пересечения и вставляем
//
// Гонку двух конкурентных запросов на один слот закрывают два слоя:
// уровень изоляции с блокировкой строк дня и exclusion constraint
// в хранилище. Проигравший получает ErrSlotConflict.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: service %d", ErrServiceNotFound, req.ServiceID)
		}
		uc.logger.Error("create_appointment: failed to get service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: get service: %v", ErrInternal, err)
	}

	appt := &domain.Appointment{
		ClientID:        req.ClientID,
		ServiceID:       svc.ID,
		StartTime:       req.StartTime,
		DurationMinutes: svc.DurationMinutes,
		Status:          domain.StatusConfirmed,
		ServiceName:     svc.Name,
		ServicePrice:    svc.Price,
	}

	if !uc.workingHours.Contains(appt.StartTime, appt.EndTime()) {
		return nil, fmt.Errorf("%w: %s - %s",
			ErrOutsideBusinessHours,
			appt.StartTime.Format(domain.DateTimeFormat),
			appt.EndTime().Format(domain.TimeFormat),
		)
	}

	var created *domain.Appointment
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		dayStart := domain.DayStart(appt.StartTime)
		dayEnd := domain.DayEnd(appt.StartTime)

		existing, err := uc.appointmentRepo.GetActiveByDateRange(txCtx, dayStart, dayEnd)
		if err != nil {
			return fmt.Errorf("load day appointments: %w", err)
		}

		for _, other := range existing {
			if other.Overlaps(appt.StartTime, appt.EndTime()) {
				return ErrSlotConflict
			}
		}

		created, err = uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotConflict) || errors.Is(err, appointmentRepo.ErrSlotConflict) {
			uc.logger.Warn("create_appointment: slot conflict for client %d at %s",
				req.ClientID, req.StartTime.Format(domain.DateTimeFormat))
			return nil, ErrSlotConflict
		}
		uc.logger.Error("create_appointment: transaction failed for client %d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: create transaction: %v", ErrInternal, err)
	}

	uc.logger.Info("create_appointment: created appointment %d for client %d at %s",
		created.ID, created.ClientID, created.StartTime.Format(domain.DateTimeFormat))

	return &Response{Appointment: created}, nil
}
