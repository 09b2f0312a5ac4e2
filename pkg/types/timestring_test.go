package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeString(t *testing.T) {
	tests := []struct {
		name     string
		moment   time.Time
		expected TimeString
	}{
		{"утро с нулями", time.Date(2025, 6, 16, 9, 5, 0, 0, time.UTC), "09:05"},
		{"полночь", time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), "00:00"},
		{"секунды отбрасываются", time.Date(2025, 6, 16, 14, 30, 59, 0, time.UTC), "14:30"},
		{"поздний вечер", time.Date(2025, 6, 16, 23, 59, 0, 0, time.UTC), "23:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewTimeString(tt.moment))
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "14:30", TimeString("14:30").String())
}
