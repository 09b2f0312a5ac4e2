package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	serviceRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/service"
	"github.com/m04kA/Barbershop-BookingService/internal/service/catalog/models"
	"github.com/m04kA/Barbershop-BookingService/pkg/ptr"
)

type fakeRepo struct {
	services map[int64]*domain.Service
	nextID   int64
}

func (f *fakeRepo) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	f.nextID++
	svc.ID = f.nextID
	f.services[svc.ID] = svc
	return svc, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.ServicesFilter) ([]*domain.Service, error) {
	result := make([]*domain.Service, 0)
	for id := int64(1); id <= f.nextID; id++ {
		if svc, ok := f.services[id]; ok {
			result = append(result, svc)
		}
	}

	if filter.Offset >= uint64(len(result)) {
		return []*domain.Service{}, nil
	}
	result = result[filter.Offset:]

	if filter.Limit > 0 && filter.Limit < uint64(len(result)) {
		result = result[:filter.Limit]
	}
	return result, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

func newTestService() (*Service, *fakeRepo) {
	repo := &fakeRepo{services: make(map[int64]*domain.Service)}
	return NewService(repo, noopLogger{}), repo
}

func TestCreate_Admin(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.Create(context.Background(), domain.RoleAdmin, models.CreateServiceInput{
		Name:            "Мужская стрижка",
		Price:           1500,
		DurationMinutes: 60,
		Description:     ptr.Ptr("Классическая стрижка"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Len(t, repo.services, 1)
}

func TestCreate_ClientForbidden(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), domain.RoleClient, models.CreateServiceInput{
		Name:            "Бритье",
		Price:           900,
		DurationMinutes: 30,
	})

	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name  string
		input models.CreateServiceInput
	}{
		{"empty name", models.CreateServiceInput{Name: "  ", Price: 100, DurationMinutes: 30}},
		{"negative price", models.CreateServiceInput{Name: "Бритье", Price: -1, DurationMinutes: 30}},
		{"zero duration", models.CreateServiceInput{Name: "Бритье", Price: 100, DurationMinutes: 0}},
		{"too long", models.CreateServiceInput{Name: "Бритье", Price: 100, DurationMinutes: 600}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), domain.RoleAdmin, tt.input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestList_Pagination(t *testing.T) {
	svc, _ := newTestService()

	for i := 0; i < 5; i++ {
		_, err := svc.Create(context.Background(), domain.RoleAdmin, models.CreateServiceInput{
			Name:            "Услуга",
			Price:           100,
			DurationMinutes: 30,
		})
		require.NoError(t, err)
	}

	page, err := svc.List(context.Background(), domain.ServicesFilter{Offset: 2, Limit: 2})

	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(3), page[0].ID)
	assert.Equal(t, int64(4), page[1].ID)
}
