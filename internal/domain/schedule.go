package domain

import (
	"fmt"
	"time"
)

// WorkingHours describes the daily window during which appointments may be
// scheduled. Applied per calendar day, no day-of-week variation.
type WorkingHours struct {
	OpenHour  int
	CloseHour int
}

// Validate проверяет, что рабочее окно корректно
func (w WorkingHours) Validate() error {
	if w.OpenHour < 0 || w.OpenHour > 23 {
		return fmt.Errorf("open hour must be in [0, 23], got %d", w.OpenHour)
	}
	if w.CloseHour < 1 || w.CloseHour > 24 {
		return fmt.Errorf("close hour must be in [1, 24], got %d", w.CloseHour)
	}
	if w.OpenHour >= w.CloseHour {
		return fmt.Errorf("open hour %d must be before close hour %d", w.OpenHour, w.CloseHour)
	}
	return nil
}

// OpenAt returns the opening instant for the calendar day of date
func (w WorkingHours) OpenAt(date time.Time) time.Time {
	return DayStart(date).Add(time.Duration(w.OpenHour) * time.Hour)
}

// CloseAt returns the closing instant for the calendar day of date
func (w WorkingHours) CloseAt(date time.Time) time.Time {
	return DayStart(date).Add(time.Duration(w.CloseHour) * time.Hour)
}

// Contains reports whether [start, end) lies entirely within the working
// window of start's calendar day. Запись, заканчивающаяся ровно в момент
// закрытия, допустима; на минуту позже - уже нет.
func (w WorkingHours) Contains(start, end time.Time) bool {
	return !start.Before(w.OpenAt(start)) && !end.After(w.CloseAt(start))
}

// DayStart returns local midnight of the calendar day of t
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayEnd returns local midnight of the next calendar day of t
func DayEnd(t time.Time) time.Time {
	return DayStart(t).AddDate(0, 0, 1)
}
