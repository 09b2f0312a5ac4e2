package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	serviceRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/service"
)

// UseCase расчет свободных слотов на день для выбранной услуги
type UseCase struct {
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	workingHours    domain.WorkingHours
	slotStepMinutes int
	logger          Logger
}

func NewUseCase(
	serviceRepository ServiceRepository,
	appointmentRepository AppointmentRepository,
	workingHours domain.WorkingHours,
	slotStepMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:     serviceRepository,
		appointmentRepo: appointmentRepository,
		workingHours:    workingHours,
		slotStepMinutes: slotStepMinutes,
		logger:          logger,
	}
}

// Execute возвращает свободные слоты на запрошенный день.
//
// 1. Валидируем запрос
// 2. Получаем услугу - от нее берем длительность
// 3. Читаем активные записи за календарный день
// 4. Строим сетку кандидатов и отбрасываем пересекающиеся
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: service %d", ErrServiceNotFound, req.ServiceID)
		}
		uc.logger.Error("get_available_slots: failed to get service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: get service: %v", ErrInternal, err)
	}

	dayStart := domain.DayStart(req.Date)
	dayEnd := domain.DayEnd(req.Date)

	appointments, err := uc.appointmentRepo.GetActiveByDateRange(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("get_available_slots: failed to load appointments for %s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: load appointments: %v", ErrInternal, err)
	}

	candidates := generateCandidateSlots(req.Date, uc.workingHours, uc.slotStepMinutes, svc.DurationMinutes)
	slots := filterAvailableSlots(candidates, appointments, svc.DurationMinutes)

	uc.logger.Info("get_available_slots: service %d date %s - %d of %d slots available",
		req.ServiceID, req.Date.Format(domain.DateFormat), len(slots), len(candidates))

	return &Response{
		ServiceID:       svc.ID,
		Date:            req.Date.Format(domain.DateFormat),
		DurationMinutes: svc.DurationMinutes,
		Slots:           slots,
	}, nil
}
