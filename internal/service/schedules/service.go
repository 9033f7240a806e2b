package schedules

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
	scheduleRepo "github.com/m04kA/Ferry-ScheduleService/internal/infra/storage/schedule"
	"github.com/m04kA/Ferry-ScheduleService/internal/service/schedules/models"
)

// Service сервис для работы с расписаниями
type Service struct {
	scheduleRepo  ScheduleRepository
	bookingClient BookingServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	bookingClient BookingServiceClient,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:  scheduleRepo,
		bookingClient: bookingClient,
		logger:        logger,
	}
}

// GetByID получает расписание по ID
// Владелец видит только собственные расписания
func (s *Service) GetByID(ctx context.Context, id int64, ownerID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetByID: fetching schedule id=%d for owner=%d", id, ownerID)

	schedule, err := s.getOwnedSchedule(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched schedule id=%d", id)
	return models.FromDomainSchedule(schedule), nil
}

// GetOwnerSchedules получает расписания владельца с гибкой фильтрацией
// Поддерживает фильтрацию по лодке, статусу и периоду дат
//
// Примеры использования:
// - Все расписания: GetOwnerSchedules(ctx, &GetOwnerSchedulesRequest{OwnerID: 123})
// - Расписания конкретной лодки: указать BoatID
// - Расписания на дату: StartDate и EndDate указывают на одну дату
// - Только активные: указать Status = "ACTIVE"
func (s *Service) GetOwnerSchedules(ctx context.Context, req *models.GetOwnerSchedulesRequest) (*models.ScheduleListResponse, error) {
	logMsg := fmt.Sprintf("GetOwnerSchedules: fetching schedules for owner=%d", req.OwnerID)
	if req.BoatID != nil {
		logMsg += fmt.Sprintf(", boat=%d", *req.BoatID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	s.logger.Info(logMsg)

	if req.OwnerID <= 0 {
		s.logger.Warn("GetOwnerSchedules: invalid ownerID=%d", req.OwnerID)
		return nil, fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetOwnerSchedules: invalid filter for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	schedules, err := s.scheduleRepo.GetByOwnerWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetOwnerSchedules: repository error for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: GetOwnerSchedules - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOwnerSchedules: successfully fetched %d schedules for owner=%d", len(schedules), req.OwnerID)
	return models.FromDomainScheduleList(schedules), nil
}

// Update частично обновляет расписание
// Меняются только название, тариф и статус; маршрут и времена отрезков
// неизменяемы. Расписания в терминальных статусах не обновляются
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: updating schedule id=%d by owner=%d", id, req.OwnerID)

	schedule, err := s.getOwnedSchedule(ctx, id, req.OwnerID)
	if err != nil {
		return nil, err
	}

	if !schedule.CanBeUpdated() {
		s.logger.Warn("Update: schedule id=%d cannot be updated, status=%s", id, schedule.Status)
		return nil, ErrCannotUpdate
	}

	update, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("Update: invalid status=%s for schedule id=%d", *req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if update.IsEmpty() {
		s.logger.Warn("Update: empty update for schedule id=%d", id)
		return nil, fmt.Errorf("%w: at least one field must be set", ErrInvalidInput)
	}

	updated, err := s.scheduleRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Update: schedule id=%d not found during update", id)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("Update: repository error for schedule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated schedule id=%d", id)
	return models.FromDomainSchedule(updated), nil
}

// Delete отменяет расписание (мягкое удаление через статус CANCELLED)
// Расписание с активными бронированиями удалить нельзя - сначала нужно
// отменить бронирования на стороне сервиса бронирований
func (s *Service) Delete(ctx context.Context, id int64, ownerID int64) error {
	s.logger.Info("Delete: deleting schedule id=%d by owner=%d", id, ownerID)

	schedule, err := s.getOwnedSchedule(ctx, id, ownerID)
	if err != nil {
		return err
	}

	if !schedule.CanBeCancelled() {
		s.logger.Warn("Delete: schedule id=%d cannot be cancelled, status=%s", id, schedule.Status)
		return ErrCannotCancel
	}

	// Проверяем наличие активных бронирований
	hasBookings, err := s.bookingClient.HasBookings(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to check bookings for schedule id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - failed to check bookings: %v", ErrInternal, err)
	}
	if hasBookings {
		s.logger.Warn("Delete: schedule id=%d has active bookings, refusing to delete", id)
		return ErrHasBookings
	}

	if err := s.scheduleRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Delete: schedule id=%d not found during status update", id)
			return ErrScheduleNotFound
		}
		s.logger.Error("Delete: repository error for schedule id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully cancelled schedule id=%d", id)
	return nil
}

// Вспомогательные методы

// getOwnedSchedule загружает расписание и проверяет, что оно принадлежит владельцу
func (s *Service) getOwnedSchedule(ctx context.Context, id int64, ownerID int64) (*domain.Schedule, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("getOwnedSchedule: schedule id=%d not found", id)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("getOwnedSchedule: repository error for schedule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: getOwnedSchedule - repository error: %v", ErrInternal, err)
	}

	if schedule.OwnerID != ownerID {
		s.logger.Warn("getOwnedSchedule: schedule id=%d belongs to owner=%d, not owner=%d",
			id, schedule.OwnerID, ownerID)
		return nil, ErrAccessDenied
	}

	return schedule, nil
}
