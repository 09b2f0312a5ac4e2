package get_user_appointments

import (
	"net/http"

	"github.com/m04kA/Barbershop-BookingService/internal/api/handlers"
	"github.com/m04kA/Barbershop-BookingService/internal/api/middleware"
	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	"github.com/m04kA/Barbershop-BookingService/internal/service/appointments/models"
)

const (
	msgInvalidStatus = "некорректный статус записи"
	msgUnauthorized  = "требуется авторизация"
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

// ListResponse список записей клиента
type ListResponse struct {
	Appointments []*models.Appointment `json:"appointments"`
}

// Handle GET /api/v1/users/me/appointments?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var status *domain.AppointmentStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed := domain.AppointmentStatus(raw)
		if !parsed.IsValid() {
			h.logger.Warn("GET /users/me/appointments - Invalid status: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		status = &parsed
	}

	appointments, err := h.service.GetUserAppointments(r.Context(), clientID, status)
	if err != nil {
		h.logger.Error("GET /users/me/appointments - Failed: client_id=%d, error=%v", clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ListResponse{Appointments: appointments})
}
