package check_conflicts

import (
	"errors"
	"net/http"

	"github.com/m04kA/Ferry-ScheduleService/internal/api/handlers"
	"github.com/m04kA/Ferry-ScheduleService/internal/api/middleware"
	checkConflicts "github.com/m04kA/Ferry-ScheduleService/internal/usecase/check_conflicts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты или времени"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные входные данные"
	msgBoatNotFound       = "лодка не найдена"
	msgBoatNotOwned       = "лодка принадлежит другому владельцу"
)

type Handler struct {
	useCase CheckConflictsUseCase
	logger  Logger
}

func NewHandler(useCase CheckConflictsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules/check-conflicts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /schedules/check-conflicts - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CheckConflictsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules/check-conflicts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(ownerID)
	if err != nil {
		h.logger.Warn("POST /schedules/check-conflicts - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkConflicts.ErrInvalidInput):
			h.logger.Warn("POST /schedules/check-conflicts - Invalid input: owner_id=%d, error=%v", ownerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, checkConflicts.ErrBoatNotFound):
			h.logger.Warn("POST /schedules/check-conflicts - Boat not found: owner_id=%d, boat_id=%d", ownerID, req.BoatID)
			handlers.RespondNotFound(w, msgBoatNotFound)

		case errors.Is(err, checkConflicts.ErrBoatNotOwned):
			h.logger.Warn("POST /schedules/check-conflicts - Boat not owned: owner_id=%d, boat_id=%d", ownerID, req.BoatID)
			handlers.RespondForbidden(w, msgBoatNotOwned)

		default:
			h.logger.Error("POST /schedules/check-conflicts - Failed to check conflicts: owner_id=%d, boat_id=%d, error=%v",
				ownerID, req.BoatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules/check-conflicts - Checked: owner_id=%d, boat_id=%d, conflicts=%d",
		ownerID, req.BoatID, len(result.Conflicts))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
