package types

import "time"

const timeLayout = "15:04"

// TimeString время в пределах суток в формате "HH:MM".
// Используется для человекочитаемого вывода начала слота.
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// String returns the "HH:MM" representation
func (t TimeString) String() string {
	return string(t)
}
