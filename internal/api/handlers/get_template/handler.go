package get_template

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Ferry-ScheduleService/internal/api/handlers"
	"github.com/m04kA/Ferry-ScheduleService/internal/api/middleware"
	"github.com/m04kA/Ferry-ScheduleService/internal/service/templates"
)

const (
	msgInvalidTemplateID = "некорректный ID шаблона"
	msgNotFound          = "шаблон не найден"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
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

// Handle GET /api/v1/templates/{templateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	templateIDStr := vars["templateId"]

	templateID, err := strconv.ParseInt(templateIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /templates/{id} - Invalid template ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplateID)
		return
	}

	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /templates/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	template, err := h.service.GetByID(r.Context(), templateID, ownerID)
	if err != nil {
		switch {
		case errors.Is(err, templates.ErrTemplateNotFound):
			h.logger.Warn("GET /templates/{id} - Template not found: template_id=%d", templateID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, templates.ErrAccessDenied):
			h.logger.Warn("GET /templates/{id} - Access denied: template_id=%d, owner_id=%d", templateID, ownerID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /templates/{id} - Failed to get template: template_id=%d, error=%v", templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /templates/{id} - Template retrieved successfully: template_id=%d, owner_id=%d",
		templateID, ownerID)
	handlers.RespondJSON(w, http.StatusOK, template)
}
