package update_schedule

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
	msgInvalidScheduleID  = "некорректный ID расписания"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "расписание не найдено"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgCannotUpdate       = "расписание в текущем статусе нельзя изменить"
	msgInvalidInput       = "некорректные входные данные"
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

// Handle PATCH /api/v1/schedules/{scheduleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	scheduleIDStr := vars["scheduleId"]

	scheduleID, err := strconv.ParseInt(scheduleIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /schedules/{id} - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /schedules/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /schedules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), scheduleID, req.ToServiceRequest(ownerID))
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrScheduleNotFound):
			h.logger.Warn("PATCH /schedules/{id} - Schedule not found: schedule_id=%d", scheduleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedules.ErrAccessDenied):
			h.logger.Warn("PATCH /schedules/{id} - Access denied: schedule_id=%d, owner_id=%d", scheduleID, ownerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedules.ErrCannotUpdate):
			h.logger.Warn("PATCH /schedules/{id} - Cannot update: schedule_id=%d", scheduleID)
			handlers.RespondError(w, http.StatusConflict, msgCannotUpdate)

		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("PATCH /schedules/{id} - Invalid input: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /schedules/{id} - Failed to update schedule: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /schedules/{id} - Schedule updated successfully: schedule_id=%d, owner_id=%d",
		scheduleID, ownerID)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
