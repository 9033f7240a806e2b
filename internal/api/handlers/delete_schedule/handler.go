package delete_schedule

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
	msgHasBookings       = "расписание содержит активные бронирования"
	msgCannotCancel      = "расписание в текущем статусе нельзя отменить"
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

// Handle DELETE /api/v1/schedules/{scheduleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	scheduleIDStr := vars["scheduleId"]

	scheduleID, err := strconv.ParseInt(scheduleIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /schedules/{id} - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /schedules/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), scheduleID, ownerID); err != nil {
		switch {
		case errors.Is(err, schedules.ErrScheduleNotFound):
			h.logger.Warn("DELETE /schedules/{id} - Schedule not found: schedule_id=%d", scheduleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedules.ErrAccessDenied):
			h.logger.Warn("DELETE /schedules/{id} - Access denied: schedule_id=%d, owner_id=%d", scheduleID, ownerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedules.ErrHasBookings):
			h.logger.Warn("DELETE /schedules/{id} - Schedule has bookings: schedule_id=%d", scheduleID)
			handlers.RespondError(w, http.StatusConflict, msgHasBookings)

		case errors.Is(err, schedules.ErrCannotCancel):
			h.logger.Warn("DELETE /schedules/{id} - Cannot cancel: schedule_id=%d", scheduleID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		default:
			h.logger.Error("DELETE /schedules/{id} - Failed to delete schedule: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedules/{id} - Schedule cancelled successfully: schedule_id=%d, owner_id=%d",
		scheduleID, ownerID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
