package get_day_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/Barbershop-BookingService/internal/api/handlers"
	"github.com/m04kA/Barbershop-BookingService/internal/api/middleware"
	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	"github.com/m04kA/Barbershop-BookingService/internal/service/appointments"
	"github.com/m04kA/Barbershop-BookingService/internal/service/appointments/models"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgForbidden    = "требуются права администратора"
	msgUnauthorized = "требуется авторизация"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ScheduleResponse расписание дня
type ScheduleResponse struct {
	Date         string                `json:"date"`
	Appointments []*models.Appointment `json:"appointments"`
}

// Handle GET /api/v1/schedule?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	_, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	date, err := time.ParseInLocation(domain.DateFormat, r.URL.Query().Get("date"), time.Local)
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	schedule, err := h.service.GetDaySchedule(r.Context(), role, date)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrPermissionDenied):
			h.logger.Warn("GET /schedule - Permission denied: role=%s", role)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /schedule - Failed: date=%s, error=%v", r.URL.Query().Get("date"), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ScheduleResponse{
		Date:         date.Format(domain.DateFormat),
		Appointments: schedule,
	})
}
