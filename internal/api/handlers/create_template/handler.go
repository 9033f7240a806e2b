package create_template

import (
	"errors"
	"net/http"

	"github.com/m04kA/Ferry-ScheduleService/internal/api/handlers"
	"github.com/m04kA/Ferry-ScheduleService/internal/api/middleware"
	"github.com/m04kA/Ferry-ScheduleService/internal/service/templates"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные входные данные"
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

// Handle POST /api/v1/templates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /templates - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /templates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToServiceRequest(ownerID))
	if err != nil {
		switch {
		case errors.Is(err, templates.ErrInvalidInput):
			h.logger.Warn("POST /templates - Invalid input: owner_id=%d, error=%v", ownerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /templates - Failed to create template: owner_id=%d, error=%v", ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /templates - Template created successfully: template_id=%d, owner_id=%d",
		created.ID, ownerID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
