package check_conflicts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
	"github.com/m04kA/Ferry-ScheduleService/internal/integrations/boatservice"
)

// UseCase use case предпросмотра конфликтов расписания
//
// Read-only вариант проверки из создания расписания: считает те же
// пересечения, но ничего не пишет и не открывает транзакцию. Ответ
// носит справочный характер - создание всё равно перепроверит конфликты
// внутри сериализуемой транзакции
type UseCase struct {
	scheduleRepo ScheduleRepository
	boatClient   BoatServiceClient
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(scheduleRepo ScheduleRepository, boatClient BoatServiceClient, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		boatClient:   boatClient,
		logger:       logger,
	}
}

// Execute выполняет use case предпросмотра конфликтов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckConflicts: owner=%d, boat=%d, date=%s, segments=%d",
		req.OwnerID, req.BoatID, req.Date.Format(domain.DateFormat), len(req.Segments))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckConflicts: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем лодку и проверяем владение
	boat, err := uc.boatClient.GetBoat(ctx, req.BoatID)
	if err != nil {
		if errors.Is(err, boatservice.ErrBoatNotFound) {
			uc.logger.Warn("CheckConflicts: boat id=%d not found", req.BoatID)
			return nil, ErrBoatNotFound
		}
		uc.logger.Error("CheckConflicts: failed to get boat id=%d: %v", req.BoatID, err)
		return nil, fmt.Errorf("%w: failed to get boat: %v", ErrInternal, err)
	}
	if boat.OwnerID != req.OwnerID {
		uc.logger.Warn("CheckConflicts: boat id=%d belongs to owner=%d, not owner=%d",
			req.BoatID, boat.OwnerID, req.OwnerID)
		return nil, ErrBoatNotOwned
	}

	// 3. Существующие ACTIVE расписания лодки в этот день
	existing, err := uc.scheduleRepo.GetActiveByBoatAndDay(ctx, req.BoatID, req.Date)
	if err != nil {
		uc.logger.Error("CheckConflicts: failed to get existing schedules: %v", err)
		return nil, fmt.Errorf("%w: failed to get existing schedules: %v", ErrInternal, err)
	}

	// 4. Пересечения кандидата с существующими рейсами
	conflicts := domain.FindConflicts(toDomainSegments(req.Segments), existing)

	uc.logger.Info("CheckConflicts: boat=%d, date=%s: %d conflict(s) found",
		req.BoatID, req.Date.Format(domain.DateFormat), len(conflicts))

	return &Response{
		BoatID:       req.BoatID,
		Date:         req.Date,
		HasConflicts: len(conflicts) > 0,
		Conflicts:    fromDomainConflicts(conflicts),
	}, nil
}
