package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ValidStatuses полный набор допустимых статусов записи
var ValidStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}

// IsValid returns true if the status is one of the known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Appointment represents a client appointment in the system
type Appointment struct {
	ID        int64
	ClientID  int64
	ServiceID int64
	StartTime time.Time

	// Длительность денормализуется из услуги в момент записи,
	// чтобы история не менялась при редактировании каталога
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice int64

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndTime returns the derived end of the appointment interval.
// End time is never stored: it is always start + duration.
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// IsActive returns true if the appointment participates in overlap checks
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled.
// Cancelled is terminal.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// Overlaps reports whether the appointment interval intersects [start, end).
// Интервалы полуоткрытые: касание границ пересечением не считается.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && a.EndTime().After(start)
}
