package create_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/Ferry-ScheduleService/internal/api/handlers"
	"github.com/m04kA/Ferry-ScheduleService/internal/api/middleware"
	createSchedule "github.com/m04kA/Ferry-ScheduleService/internal/usecase/create_schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные входные данные"
	msgInvalidSchedule    = "расписание не прошло валидацию"
	msgScheduleConflict   = "расписание пересекается с существующими рейсами"
	msgBoatNotFound       = "лодка не найдена"
	msgBoatNotOwned       = "лодка принадлежит другому владельцу"
	msgTemplateNotFound   = "шаблон не найден"
	msgTemplateInactive   = "шаблон деактивирован"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase CreateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase CreateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /schedules - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат и времени)
	useCaseReq, err := req.ToUseCaseRequest(ownerID)
	if err != nil {
		h.logger.Warn("POST /schedules - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *createSchedule.ValidationError
		var conflictErr *createSchedule.ConflictError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /schedules - Validation failed: owner_id=%d, boat_id=%d, reasons=%d",
				ownerID, req.BoatID, len(validationErr.Reasons))
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
				Error:   msgInvalidSchedule,
				Reasons: validationErr.Reasons,
			})

		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /schedules - Schedule conflict: owner_id=%d, boat_id=%d, conflicts=%d",
				ownerID, req.BoatID, len(conflictErr.Conflicts))
			resp := ConflictErrorResponse{
				Error:     msgScheduleConflict,
				Conflicts: make([]ConflictResponse, len(conflictErr.Conflicts)),
			}
			for i, c := range conflictErr.Conflicts {
				resp.Conflicts[i] = ConflictResponse{
					ScheduleID:     c.ScheduleID,
					BoatName:       c.BoatName,
					ConflictTime:   c.ConflictTime.String(),
					OverlapMinutes: c.OverlapMinutes,
				}
			}
			handlers.RespondJSON(w, http.StatusConflict, resp)

		case errors.Is(err, createSchedule.ErrInvalidInput):
			h.logger.Warn("POST /schedules - Invalid input: owner_id=%d, error=%v", ownerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createSchedule.ErrBoatNotFound):
			h.logger.Warn("POST /schedules - Boat not found: owner_id=%d, boat_id=%d", ownerID, req.BoatID)
			handlers.RespondNotFound(w, msgBoatNotFound)

		case errors.Is(err, createSchedule.ErrBoatNotOwned):
			h.logger.Warn("POST /schedules - Boat not owned: owner_id=%d, boat_id=%d", ownerID, req.BoatID)
			handlers.RespondForbidden(w, msgBoatNotOwned)

		case errors.Is(err, createSchedule.ErrTemplateNotFound):
			h.logger.Warn("POST /schedules - Template not found: owner_id=%d", ownerID)
			handlers.RespondNotFound(w, msgTemplateNotFound)

		case errors.Is(err, createSchedule.ErrTemplateInactive):
			h.logger.Warn("POST /schedules - Template inactive: owner_id=%d", ownerID)
			handlers.RespondBadRequest(w, msgTemplateInactive)

		case errors.Is(err, createSchedule.ErrAccessDenied):
			h.logger.Warn("POST /schedules - Access denied: owner_id=%d", ownerID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /schedules - Failed to create schedule: owner_id=%d, boat_id=%d, error=%v",
				ownerID, req.BoatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /schedules - Created %d schedule(s): owner_id=%d, boat_id=%d",
		len(result.Schedules), ownerID, req.BoatID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
