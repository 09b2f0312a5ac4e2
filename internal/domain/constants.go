package domain

// Default schedule configuration values
const (
	DefaultOpenHour        = 10
	DefaultCloseHour       = 20
	DefaultSlotStepMinutes = 30
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MinPasswordLength         = 6
	MaxServicesPageSize       = 100
)

// Time format constants
const (
	TimeFormat     = "15:04"               // HH:MM
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04:05" // без зоны, единая бизнес-зона процесса
)
