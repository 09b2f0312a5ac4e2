package get_available_slots

import (
	"time"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	"github.com/m04kA/Barbershop-BookingService/pkg/types"
)

// generateCandidateSlots строит сетку кандидатов с фиксированным шагом.
// Кандидат входит в сетку, пока услуга целиком помещается до закрытия:
// слот, заканчивающийся ровно в час закрытия, допустим.
func generateCandidateSlots(date time.Time, hours domain.WorkingHours, stepMinutes, durationMinutes int) []time.Time {
	closeAt := hours.CloseAt(date)
	duration := time.Duration(durationMinutes) * time.Minute

	candidates := make([]time.Time, 0)
	for cursor := hours.OpenAt(date); !cursor.Add(duration).After(closeAt); cursor = cursor.Add(time.Duration(stepMinutes) * time.Minute) {
		candidates = append(candidates, cursor)
	}

	return candidates
}

// filterAvailableSlots отбирает кандидатов, не пересекающихся ни с одной
// из существующих записей. Интервалы полуоткрытые: слот, начинающийся
// ровно в момент окончания записи, считается свободным.
func filterAvailableSlots(candidates []time.Time, appointments []*domain.Appointment, durationMinutes int) []types.TimeString {
	duration := time.Duration(durationMinutes) * time.Minute

	available := make([]types.TimeString, 0, len(candidates))
	for _, start := range candidates {
		end := start.Add(duration)

		occupied := false
		for _, appt := range appointments {
			if appt.Overlaps(start, end) {
				occupied = true
				break
			}
		}

		if !occupied {
			available = append(available, types.NewTimeString(start))
		}
	}

	return available
}
