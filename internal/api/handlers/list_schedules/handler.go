package list_schedules

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/Ferry-ScheduleService/internal/api/handlers"
	"github.com/m04kA/Ferry-ScheduleService/internal/api/middleware"
	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
	"github.com/m04kA/Ferry-ScheduleService/internal/service/schedules"
	"github.com/m04kA/Ferry-ScheduleService/internal/service/schedules/models"
)

const (
	msgInvalidOwnerID = "некорректный ID владельца"
	msgInvalidBoatID  = "некорректный параметр boatId"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus  = "некорректный статус расписания"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgForbidden      = "доступ запрещен"
	msgInvalidInput   = "некорректные входные данные"
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

// Handle GET /api/v1/owners/{ownerId}/schedules
//
// Query параметры:
// - boatId: фильтр по лодке
// - status: фильтр по статусу (DRAFT, ACTIVE, ...)
// - startDate, endDate: период дат YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerIDStr := vars["ownerId"]

	ownerID, err := strconv.ParseInt(ownerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /owners/{id}/schedules - Invalid owner ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOwnerID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /owners/{id}/schedules - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Владелец видит только собственные расписания
	if userID != ownerID {
		h.logger.Warn("GET /owners/{id}/schedules - Access denied: owner_id=%d, user_id=%d", ownerID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	req := &models.GetOwnerSchedulesRequest{OwnerID: ownerID}

	query := r.URL.Query()

	if boatIDStr := query.Get("boatId"); boatIDStr != "" {
		boatID, err := strconv.ParseInt(boatIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /owners/{id}/schedules - Invalid boatId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBoatID)
			return
		}
		req.BoatID = &boatID
	}

	if status := query.Get("status"); status != "" {
		if _, err := models.ToDomainScheduleStatus(status); err != nil {
			h.logger.Warn("GET /owners/{id}/schedules - Invalid status: %s", status)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		req.Status = &status
	}

	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			h.logger.Warn("GET /owners/{id}/schedules - Invalid startDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			h.logger.Warn("GET /owners/{id}/schedules - Invalid endDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	result, err := h.service.GetOwnerSchedules(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("GET /owners/{id}/schedules - Invalid input: owner_id=%d, error=%v", ownerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /owners/{id}/schedules - Failed to get schedules: owner_id=%d, error=%v", ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /owners/{id}/schedules - Retrieved %d schedules: owner_id=%d",
		len(result.Schedules), ownerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
