package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	"github.com/m04kA/Barbershop-BookingService/pkg/types"
)

var testHours = domain.WorkingHours{OpenHour: 10, CloseHour: 20}

func testDate() time.Time {
	return time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 16, hour, minute, 0, 0, time.UTC)
}

func TestGenerateCandidateSlots_HourService(t *testing.T) {
	candidates := generateCandidateSlots(testDate(), testHours, 30, 60)

	// Рабочий день 10:00-20:00, шаг 30 минут, услуга на час:
	// последний кандидат 19:00, всего 19
	require.Len(t, candidates, 19)
	assert.Equal(t, at(10, 0), candidates[0])
	assert.Equal(t, at(10, 30), candidates[1])
	assert.Equal(t, at(19, 0), candidates[18])
}

func TestGenerateCandidateSlots_HalfHourService(t *testing.T) {
	candidates := generateCandidateSlots(testDate(), testHours, 30, 30)

	// Услуга на полчаса помещается вплоть до 19:30
	require.Len(t, candidates, 20)
	assert.Equal(t, at(19, 30), candidates[19])
}

func TestGenerateCandidateSlots_LongService(t *testing.T) {
	candidates := generateCandidateSlots(testDate(), testHours, 30, 90)

	// Полтора часа: последний старт 18:30
	require.Len(t, candidates, 18)
	assert.Equal(t, at(18, 30), candidates[17])
}

func TestGenerateCandidateSlots_ServiceLongerThanDay(t *testing.T) {
	candidates := generateCandidateSlots(testDate(), testHours, 30, 11*60)

	assert.Empty(t, candidates)
}

func TestFilterAvailableSlots_RemovesOverlapping(t *testing.T) {
	candidates := generateCandidateSlots(testDate(), testHours, 30, 60)

	appointments := []*domain.Appointment{
		{StartTime: at(12, 0), DurationMinutes: 60, Status: domain.StatusConfirmed},
	}

	slots := filterAvailableSlots(candidates, appointments, 60)

	// Запись 12:00-13:00 выбивает кандидатов 11:30, 12:00 и 12:30
	assert.NotContains(t, slots, types.TimeString("11:30"))
	assert.NotContains(t, slots, types.TimeString("12:00"))
	assert.NotContains(t, slots, types.TimeString("12:30"))
	assert.Contains(t, slots, types.TimeString("11:00"))
	assert.Contains(t, slots, types.TimeString("13:00"))
	assert.Len(t, slots, 16)
}

func TestFilterAvailableSlots_TouchingIntervalsAreFree(t *testing.T) {
	candidates := []time.Time{at(11, 0), at(13, 0)}

	appointments := []*domain.Appointment{
		{StartTime: at(12, 0), DurationMinutes: 60, Status: domain.StatusConfirmed},
	}

	slots := filterAvailableSlots(candidates, appointments, 60)

	// Слот 11:00-12:00 заканчивается ровно в начале записи,
	// слот 13:00 начинается ровно в ее конце - оба свободны
	assert.Equal(t, []types.TimeString{"11:00", "13:00"}, slots)
}

func TestFilterAvailableSlots_NoAppointments(t *testing.T) {
	candidates := generateCandidateSlots(testDate(), testHours, 30, 60)

	slots := filterAvailableSlots(candidates, nil, 60)

	assert.Len(t, slots, 19)
}
