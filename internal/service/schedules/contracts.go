package schedules

import (
	"context"
	"time"

	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
	GetByOwnerWithFilter(ctx context.Context, filter domain.OwnerSchedulesFilter) ([]*domain.Schedule, error)
	GetActiveByBoatAndDay(ctx context.Context, boatID int64, day time.Time) ([]*domain.Schedule, error)
	Update(ctx context.Context, id int64, update domain.ScheduleUpdate) (*domain.Schedule, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ScheduleStatus) error
}

// BookingServiceClient интерфейс клиента сервиса бронирований
type BookingServiceClient interface {
	HasBookings(ctx context.Context, scheduleID int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
