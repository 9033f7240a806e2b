package create_schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
	templatestorage "github.com/m04kA/Ferry-ScheduleService/internal/infra/storage/template"
	"github.com/m04kA/Ferry-ScheduleService/internal/integrations/boatservice"
)

// UseCase use case для создания расписания
//
// Порядок шагов фиксированный: структурная валидация → проверка конфликтов →
// развёртка повторения → батч-вставка. Проверка конфликтов и вставка
// выполняются в одной сериализуемой транзакции, чтобы две конкурирующие
// заявки на одну лодку и день не прошли проверку одновременно
type UseCase struct {
	scheduleRepo ScheduleRepository
	templateRepo TemplateRepository
	boatClient   BoatServiceClient
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	templateRepo TemplateRepository,
	boatClient BoatServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		templateRepo: templateRepo,
		boatClient:   boatClient,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSchedule: owner=%d, boat=%d, date=%s, stops=%d, segments=%d, recurrence=%v",
		req.OwnerID, req.BoatID, req.StartDate.Format(domain.DateFormat),
		len(req.Stops), len(req.Segments), req.Recurrence != nil)

	// 1. Валидация базовых входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSchedule: request validation failed: %v", err)
		return nil, err
	}

	// 2. Если создаём из шаблона - заполняем маршрут из него
	if req.TemplateID != nil {
		if err := uc.applyTemplate(ctx, req); err != nil {
			return nil, err
		}
	}

	// 3. Структурная валидация маршрута - все нарушения собираются за один проход
	// Невалидное определение не попадает ни в проверку конфликтов, ни в хранилище
	if result := validateSchedule(req); !result.IsValid {
		uc.logger.Warn("CreateSchedule: schedule validation failed: %s", strings.Join(result.Errors, "; "))
		return nil, &ValidationError{Reasons: result.Errors}
	}

	// 4. Получаем лодку и проверяем владение
	boat, err := uc.boatClient.GetBoat(ctx, req.BoatID)
	if err != nil {
		if errors.Is(err, boatservice.ErrBoatNotFound) {
			uc.logger.Warn("CreateSchedule: boat id=%d not found", req.BoatID)
			return nil, ErrBoatNotFound
		}
		uc.logger.Error("CreateSchedule: failed to get boat id=%d: %v", req.BoatID, err)
		return nil, fmt.Errorf("%w: failed to get boat: %v", ErrInternal, err)
	}
	if boat.OwnerID != req.OwnerID {
		uc.logger.Warn("CreateSchedule: boat id=%d belongs to owner=%d, not owner=%d",
			req.BoatID, boat.OwnerID, req.OwnerID)
		return nil, ErrBoatNotOwned
	}

	// 5. Определяем запрошенный статус (по умолчанию ACTIVE)
	status := domain.StatusActive
	if req.Status != nil {
		parsed, ok := domain.ToScheduleStatus(*req.Status)
		if !ok {
			uc.logger.Warn("CreateSchedule: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
		status = parsed
	}

	var (
		created         []*domain.Schedule
		savedTemplateID *int64
	)

	// 6. Проверка конфликтов, развёртка и запись - в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Существующие ACTIVE расписания лодки в суточном окне стартовой даты
		existing, err := uc.scheduleRepo.GetActiveByBoatAndDay(txCtx, req.BoatID, req.StartDate)
		if err != nil {
			uc.logger.Error("CreateSchedule: failed to get existing schedules: %v", err)
			return fmt.Errorf("%w: failed to get existing schedules: %v", ErrInternal, err)
		}

		// 6.2. Пересечения кандидата с существующими рейсами
		// Отказ целиком: ни один экземпляр не записывается при конфликте
		if conflicts := findConflicts(req.Segments, existing); len(conflicts) > 0 {
			uc.logger.Warn("CreateSchedule: found %d conflicts for boat=%d on %s",
				len(conflicts), req.BoatID, req.StartDate.Format(domain.DateFormat))
			return &ConflictError{Conflicts: conflicts}
		}

		// 6.3. Развёртка правила повторения в конечный список дат
		dates := expandDates(req.StartDate, req.Recurrence.ToDomain())
		uc.logger.Info("CreateSchedule: expanded to %d instance dates", len(dates))

		// Пустая развёртка (старт позже конечной границы) - вырожденный
		// случай, не ошибка: писать нечего
		if len(dates) == 0 {
			return nil
		}

		// 6.4. Материализация экземпляров и батч-вставка
		instances := make([]*domain.Schedule, len(dates))
		for i, date := range dates {
			instances[i] = materializeSchedule(req, date, boat.Name, status)
		}

		created, err = uc.scheduleRepo.CreateBatch(txCtx, instances)
		if err != nil {
			uc.logger.Error("CreateSchedule: failed to create schedules: %v", err)
			return fmt.Errorf("%w: failed to create schedules: %v", ErrInternal, err)
		}

		// 6.5. По запросу сохраняем маршрут как переиспользуемый шаблон
		if req.SaveAsTemplate {
			tpl, err := uc.saveTemplate(txCtx, req)
			if err != nil {
				return err
			}
			savedTemplateID = &tpl.ID
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateSchedule: successfully created %d schedule(s) for owner=%d, boat=%d",
		len(created), req.OwnerID, req.BoatID)

	resp := &Response{
		Schedules:       make([]ScheduleData, len(created)),
		SavedTemplateID: savedTemplateID,
	}
	for i, s := range created {
		resp.Schedules[i] = fromDomainSchedule(s)
	}
	return resp, nil
}

// applyTemplate загружает шаблон и заполняет из него незаданные поля запроса
func (uc *UseCase) applyTemplate(ctx context.Context, req *Request) error {
	tpl, err := uc.templateRepo.GetByID(ctx, *req.TemplateID)
	if err != nil {
		if errors.Is(err, templatestorage.ErrTemplateNotFound) {
			uc.logger.Warn("CreateSchedule: template id=%d not found", *req.TemplateID)
			return ErrTemplateNotFound
		}
		uc.logger.Error("CreateSchedule: failed to get template id=%d: %v", *req.TemplateID, err)
		return fmt.Errorf("%w: failed to get template: %v", ErrInternal, err)
	}

	if tpl.OwnerID != req.OwnerID {
		uc.logger.Warn("CreateSchedule: template id=%d belongs to owner=%d, not owner=%d",
			tpl.ID, tpl.OwnerID, req.OwnerID)
		return ErrAccessDenied
	}
	if !tpl.IsActive {
		uc.logger.Warn("CreateSchedule: template id=%d is deactivated", tpl.ID)
		return ErrTemplateInactive
	}

	if len(req.Stops) == 0 {
		for _, stop := range tpl.Stops {
			req.Stops = append(req.Stops, StopInput{Name: stop.Name, Location: stop.Location})
		}
	}
	if len(req.Segments) == 0 {
		for _, seg := range tpl.Segments {
			req.Segments = append(req.Segments, SegmentInput{
				OriginStop:    seg.OriginStop,
				DestStop:      seg.DestStop,
				DepartureTime: seg.DepartureTime,
				ArrivalTime:   seg.ArrivalTime,
			})
		}
	}
	if strings.TrimSpace(req.Name) == "" {
		req.Name = tpl.Name
	}
	if req.PricingTier == "" {
		req.PricingTier = tpl.PricingTier
	}
	if req.BoatID == 0 && tpl.DefaultBoatID != nil {
		req.BoatID = *tpl.DefaultBoatID
	}

	uc.logger.Info("CreateSchedule: applied template id=%d (%d stops, %d segments)",
		tpl.ID, len(tpl.Stops), len(tpl.Segments))
	return nil
}

// saveTemplate сохраняет маршрут запроса как новый шаблон владельца
func (uc *UseCase) saveTemplate(ctx context.Context, req *Request) (*domain.ScheduleTemplate, error) {
	tpl := &domain.ScheduleTemplate{
		OwnerID:       req.OwnerID,
		Name:          req.TemplateName,
		DefaultBoatID: &req.BoatID,
		PricingTier:   req.PricingTier,
		IsActive:      true,
	}

	for i, stop := range req.Stops {
		tpl.Stops = append(tpl.Stops, domain.RouteStop{
			Name:          stop.Name,
			Location:      stop.Location,
			SequenceOrder: i + 1,
		})
	}
	for i, seg := range req.Segments {
		tpl.Segments = append(tpl.Segments, domain.ScheduleSegment{
			OriginStop:    seg.OriginStop,
			DestStop:      seg.DestStop,
			DepartureTime: seg.DepartureTime,
			ArrivalTime:   seg.ArrivalTime,
			SequenceOrder: i + 1,
		})
	}

	created, err := uc.templateRepo.Create(ctx, tpl)
	if err != nil {
		uc.logger.Error("CreateSchedule: failed to save template: %v", err)
		return nil, fmt.Errorf("%w: failed to save template: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateSchedule: saved route as template id=%d name=%q", created.ID, created.Name)
	return created, nil
}
