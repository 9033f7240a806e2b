package create_schedule

import (
	"context"
	"time"

	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
	"github.com/m04kA/Ferry-ScheduleService/internal/integrations/boatservice"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	CreateBatch(ctx context.Context, schedules []*domain.Schedule) ([]*domain.Schedule, error)
	GetActiveByBoatAndDay(ctx context.Context, boatID int64, day time.Time) ([]*domain.Schedule, error)
}

// TemplateRepository интерфейс репозитория шаблонов
type TemplateRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ScheduleTemplate, error)
	Create(ctx context.Context, tpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error)
}

// BoatServiceClient интерфейс клиента реестра лодок
type BoatServiceClient interface {
	GetBoat(ctx context.Context, boatID int64) (*boatservice.Boat, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
