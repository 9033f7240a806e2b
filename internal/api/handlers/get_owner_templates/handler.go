package get_owner_templates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Ferry-ScheduleService/internal/api/handlers"
	"github.com/m04kA/Ferry-ScheduleService/internal/api/middleware"
	"github.com/m04kA/Ferry-ScheduleService/internal/service/templates"
	"github.com/m04kA/Ferry-ScheduleService/internal/service/templates/models"
)

const (
	msgInvalidOwnerID = "некорректный ID владельца"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgForbidden      = "доступ запрещен"
	msgInvalidInput   = "некорректные входные данные"
)

type Handler struct {
	service TemplateService
	logger  Logger
}

func NewHandler(service TemplateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/owners/{ownerId}/templates
//
// Query параметры:
// - activeOnly: true - вернуть только активные шаблоны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerIDStr := vars["ownerId"]

	ownerID, err := strconv.ParseInt(ownerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /owners/{id}/templates - Invalid owner ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOwnerID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /owners/{id}/templates - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if userID != ownerID {
		h.logger.Warn("GET /owners/{id}/templates - Access denied: owner_id=%d, user_id=%d", ownerID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	req := &models.GetOwnerTemplatesRequest{
		OwnerID:    ownerID,
		ActiveOnly: r.URL.Query().Get("activeOnly") == "true",
	}

	result, err := h.service.GetOwnerTemplates(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, templates.ErrInvalidInput):
			h.logger.Warn("GET /owners/{id}/templates - Invalid input: owner_id=%d, error=%v", ownerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /owners/{id}/templates - Failed to get templates: owner_id=%d, error=%v", ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /owners/{id}/templates - Retrieved %d templates: owner_id=%d",
		len(result.Templates), ownerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
