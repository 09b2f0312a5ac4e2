package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/Barbershop-BookingService/pkg/ptr"
)

type fakeRepo struct {
	appointments map[int64]*domain.Appointment
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeRepo) GetByClientID(_ context.Context, clientID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, appt := range f.appointments {
		if appt.ClientID != clientID {
			continue
		}
		if status != nil && appt.Status != *status {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

func (f *fakeRepo) GetActiveByDateRange(_ context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, appt := range f.appointments {
		if appt.IsActive() && !appt.StartTime.Before(from) && appt.StartTime.Before(to) {
			result = append(result, appt)
		}
	}
	return result, nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64) error {
	appt, ok := f.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	appt.Status = domain.StatusCancelled
	appt.CancelledAt = ptr.Ptr(time.Now())
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

func at(hour int) time.Time {
	return time.Date(2025, 6, 16, hour, 0, 0, 0, time.UTC)
}

func newTestService() (*Service, *fakeRepo) {
	repo := &fakeRepo{
		appointments: map[int64]*domain.Appointment{
			1: {ID: 1, ClientID: 10, ServiceID: 1, StartTime: at(12), DurationMinutes: 60, Status: domain.StatusConfirmed, ServiceName: "Мужская стрижка", ServicePrice: 1500},
			2: {ID: 2, ClientID: 20, ServiceID: 2, StartTime: at(14), DurationMinutes: 30, Status: domain.StatusPending},
			3: {ID: 3, ClientID: 10, ServiceID: 1, StartTime: at(16), DurationMinutes: 60, Status: domain.StatusCancelled},
		},
	}
	return NewService(repo, noopLogger{}), repo
}

func TestGetByID_Owner(t *testing.T) {
	svc, _ := newTestService()

	appt, err := svc.GetByID(context.Background(), 10, domain.RoleClient, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), appt.ID)
	assert.Equal(t, at(13), appt.EndTime)
	assert.Equal(t, "Мужская стрижка", appt.ServiceName)
}

func TestGetByID_AdminSeesAny(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), 999, domain.RoleAdmin, 1)

	assert.NoError(t, err)
}

func TestGetByID_ForeignAppointment(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), 20, domain.RoleClient, 1)

	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), 10, domain.RoleClient, 42)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetUserAppointments(t *testing.T) {
	svc, _ := newTestService()

	list, err := svc.GetUserAppointments(context.Background(), 10, nil)

	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestGetUserAppointments_FilterByStatus(t *testing.T) {
	svc, _ := newTestService()

	list, err := svc.GetUserAppointments(context.Background(), 10, ptr.Ptr(domain.StatusCancelled))

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(3), list[0].ID)
}

func TestGetDaySchedule_AdminOnly(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetDaySchedule(context.Background(), domain.RoleClient, at(0))
	assert.ErrorIs(t, err, ErrPermissionDenied)

	list, err := svc.GetDaySchedule(context.Background(), domain.RoleAdmin, at(0))
	require.NoError(t, err)
	// Отмененная запись в расписание дня не попадает
	assert.Len(t, list, 2)
}

func TestCancel_Owner(t *testing.T) {
	svc, repo := newTestService()

	appt, err := svc.Cancel(context.Background(), 10, domain.RoleClient, 1)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), appt.Status)
	assert.NotNil(t, appt.CancelledAt)
	assert.Equal(t, domain.StatusCancelled, repo.appointments[1].Status)
}

func TestCancel_ForeignAppointment(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Cancel(context.Background(), 20, domain.RoleClient, 1)

	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Cancel(context.Background(), 10, domain.RoleClient, 3)

	assert.ErrorIs(t, err, ErrNotCancellable)
}

func TestCancel_AdminCancelsAny(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Cancel(context.Background(), 999, domain.RoleAdmin, 2)

	assert.NoError(t, err)
}
