package create_appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	serviceRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/service"
)

var testHours = domain.WorkingHours{OpenHour: 10, CloseHour: 20}

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 16, hour, minute, 0, 0, time.UTC)
}

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

// fakeAppointmentStore in-memory хранилище записей.
// Потокобезопасность обеспечивает fakeTxManager.
type fakeAppointmentStore struct {
	appointments []*domain.Appointment
	nextID       int64
}

func (f *fakeAppointmentStore) GetActiveByDateRange(_ context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, appt := range f.appointments {
		if appt.IsActive() && !appt.StartTime.Before(from) && appt.StartTime.Before(to) {
			result = append(result, appt)
		}
	}
	return result, nil
}

func (f *fakeAppointmentStore) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.nextID++
	appt.ID = f.nextID
	f.appointments = append(f.appointments, appt)
	return appt, nil
}

// fakeTxManager сериализует транзакции мьютексом - модель того, что
// дает SERIALIZABLE с блокировкой строк дня
type fakeTxManager struct {
	mu sync.Mutex
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

func newTestUseCase(store *fakeAppointmentStore) *UseCase {
	services := map[int64]*domain.Service{
		1: {ID: 1, Name: "Мужская стрижка", Price: 1500, DurationMinutes: 60},
		2: {ID: 2, Name: "Бритье", Price: 900, DurationMinutes: 30},
	}

	return NewUseCase(
		&fakeServiceRepo{services: services},
		store,
		&fakeTxManager{},
		testHours,
		noopLogger{},
	)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

func TestExecute_Success(t *testing.T) {
	store := &fakeAppointmentStore{}
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), Request{
		ClientID:  10,
		ServiceID: 1,
		StartTime: at(12, 0),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Appointment.ID)
	assert.Equal(t, domain.StatusConfirmed, resp.Appointment.Status)
	assert.Equal(t, 60, resp.Appointment.DurationMinutes)
	assert.Equal(t, "Мужская стрижка", resp.Appointment.ServiceName)
	assert.Equal(t, int64(1500), resp.Appointment.ServicePrice)
}

func TestExecute_EndsExactlyAtClose(t *testing.T) {
	store := &fakeAppointmentStore{}
	uc := newTestUseCase(store)

	// Запись 19:00-20:00 заканчивается ровно в час закрытия - допустимо
	_, err := uc.Execute(context.Background(), Request{
		ClientID:  10,
		ServiceID: 1,
		StartTime: at(19, 0),
	})

	assert.NoError(t, err)
}

func TestExecute_EndsAfterClose(t *testing.T) {
	store := &fakeAppointmentStore{}
	uc := newTestUseCase(store)

	// 19:30 + 60 минут = 20:30, выходит за рабочие часы
	_, err := uc.Execute(context.Background(), Request{
		ClientID:  10,
		ServiceID: 1,
		StartTime: at(19, 30),
	})

	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestExecute_StartsBeforeOpen(t *testing.T) {
	store := &fakeAppointmentStore{}
	uc := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), Request{
		ClientID:  10,
		ServiceID: 1,
		StartTime: at(9, 30),
	})

	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestExecute_SlotConflict(t *testing.T) {
	store := &fakeAppointmentStore{}
	uc := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), Request{ClientID: 10, ServiceID: 1, StartTime: at(12, 0)})
	require.NoError(t, err)

	// Вторая запись 12:30-13:00 пересекается с 12:00-13:00
	_, err = uc.Execute(context.Background(), Request{ClientID: 11, ServiceID: 2, StartTime: at(12, 30)})

	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_TouchingIntervalsAllowed(t *testing.T) {
	store := &fakeAppointmentStore{}
	uc := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), Request{ClientID: 10, ServiceID: 1, StartTime: at(12, 0)})
	require.NoError(t, err)

	// Запись 13:00-14:00 начинается ровно в конце предыдущей
	_, err = uc.Execute(context.Background(), Request{ClientID: 11, ServiceID: 1, StartTime: at(13, 0)})

	assert.NoError(t, err)
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	store := &fakeAppointmentStore{
		appointments: []*domain.Appointment{
			{ID: 1, StartTime: at(12, 0), DurationMinutes: 60, Status: domain.StatusCancelled},
		},
		nextID: 1,
	}
	uc := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), Request{ClientID: 10, ServiceID: 1, StartTime: at(12, 0)})

	assert.NoError(t, err)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentStore{})

	_, err := uc.Execute(context.Background(), Request{ClientID: 10, ServiceID: 42, StartTime: at(12, 0)})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentStore{})

	_, err := uc.Execute(context.Background(), Request{ClientID: 0, ServiceID: 1, StartTime: at(12, 0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), Request{ClientID: 10, ServiceID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ConcurrentRequestsSameSlot(t *testing.T) {
	store := &fakeAppointmentStore{}
	uc := newTestUseCase(store)

	const workers = 2
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(clientID int64) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), Request{
				ClientID:  clientID,
				ServiceID: 1,
				StartTime: at(15, 0),
			})
			errs <- err
		}(int64(100 + i))
	}
	wg.Wait()
	close(errs)

	var successes, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, ErrSlotConflict):
			conflicts++
		}
	}

	// Ровно один запрос выигрывает слот
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
	assert.Len(t, store.appointments, 1)
}
