package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	serviceRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/service"
	"github.com/m04kA/Barbershop-BookingService/pkg/ptr"
	"github.com/m04kA/Barbershop-BookingService/pkg/types"
)

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) GetActiveByDateRange(_ context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}

	result := make([]*domain.Appointment, 0)
	for _, appt := range f.appointments {
		if appt.IsActive() && !appt.StartTime.Before(from) && appt.StartTime.Before(to) {
			result = append(result, appt)
		}
	}
	return result, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

func newTestUseCase(services map[int64]*domain.Service, appointments []*domain.Appointment) *UseCase {
	return NewUseCase(
		&fakeServiceRepo{services: services},
		&fakeAppointmentRepo{appointments: appointments},
		testHours,
		30,
		noopLogger{},
	)
}

func haircut() map[int64]*domain.Service {
	return map[int64]*domain.Service{
		1: {
			ID:              1,
			Name:            "Мужская стрижка",
			Price:           1500,
			DurationMinutes: 60,
			Description:     ptr.Ptr("Классическая стрижка"),
		},
	}
}

func TestExecute_EmptyDay(t *testing.T) {
	uc := newTestUseCase(haircut(), nil)

	resp, err := uc.Execute(context.Background(), Request{ServiceID: 1, Date: testDate()})

	require.NoError(t, err)
	assert.Equal(t, "2025-06-16", resp.Date)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Len(t, resp.Slots, 19)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0])
	assert.Equal(t, types.TimeString("19:00"), resp.Slots[18])
}

func TestExecute_BusyDay(t *testing.T) {
	appointments := []*domain.Appointment{
		{ID: 1, StartTime: at(10, 0), DurationMinutes: 60, Status: domain.StatusConfirmed},
		{ID: 2, StartTime: at(14, 30), DurationMinutes: 30, Status: domain.StatusPending},
	}
	uc := newTestUseCase(haircut(), appointments)

	resp, err := uc.Execute(context.Background(), Request{ServiceID: 1, Date: testDate()})

	require.NoError(t, err)
	// Запись 10:00-11:00 выбивает 10:00 и 10:30,
	// запись 14:30-15:00 выбивает 14:00 и 14:30
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("10:30"))
	assert.NotContains(t, resp.Slots, types.TimeString("14:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("14:30"))
	assert.Contains(t, resp.Slots, types.TimeString("11:00"))
	assert.Contains(t, resp.Slots, types.TimeString("15:00"))
	assert.Len(t, resp.Slots, 15)
}

func TestExecute_CancelledAppointmentsIgnored(t *testing.T) {
	appointments := []*domain.Appointment{
		{ID: 1, StartTime: at(12, 0), DurationMinutes: 60, Status: domain.StatusCancelled},
	}
	uc := newTestUseCase(haircut(), appointments)

	resp, err := uc.Execute(context.Background(), Request{ServiceID: 1, Date: testDate()})

	require.NoError(t, err)
	assert.Contains(t, resp.Slots, types.TimeString("12:00"))
	assert.Len(t, resp.Slots, 19)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(haircut(), nil)

	_, err := uc.Execute(context.Background(), Request{ServiceID: 42, Date: testDate()})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidServiceID(t *testing.T) {
	uc := newTestUseCase(haircut(), nil)

	_, err := uc.Execute(context.Background(), Request{ServiceID: 0, Date: testDate()})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StorageError(t *testing.T) {
	uc := NewUseCase(
		&fakeServiceRepo{services: haircut()},
		&fakeAppointmentRepo{err: errors.New("connection refused")},
		testHours,
		30,
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), Request{ServiceID: 1, Date: testDate()})

	assert.ErrorIs(t, err, ErrInternal)
}
