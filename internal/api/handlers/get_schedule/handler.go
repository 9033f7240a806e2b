package get_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Ferry-ScheduleService/internal/api/handlers"
	"github.com/m04kA/Ferry-ScheduleService/internal/api/middleware"
	"github.com/m04kA/Ferry-ScheduleService/internal/service/schedules"
)

const (
	msgInvalidScheduleID = "некорректный ID расписания"
	msgNotFound          = "расписание не найдено"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules/{scheduleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	scheduleIDStr := vars["scheduleId"]

	scheduleID, err := strconv.ParseInt(scheduleIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /schedules/{id} - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /schedules/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	schedule, err := h.service.GetByID(r.Context(), scheduleID, ownerID)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrScheduleNotFound):
			h.logger.Warn("GET /schedules/{id} - Schedule not found: schedule_id=%d", scheduleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedules.ErrAccessDenied):
			h.logger.Warn("GET /schedules/{id} - Access denied: schedule_id=%d, owner_id=%d", scheduleID, ownerID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /schedules/{id} - Failed to get schedule: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedules/{id} - Schedule retrieved successfully: schedule_id=%d, owner_id=%d",
		scheduleID, ownerID)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
