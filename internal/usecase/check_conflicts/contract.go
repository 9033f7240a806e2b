package check_conflicts

import (
	"context"
	"time"

	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
	"github.com/m04kA/Ferry-ScheduleService/internal/integrations/boatservice"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetActiveByBoatAndDay(ctx context.Context, boatID int64, day time.Time) ([]*domain.Schedule, error)
}

// BoatServiceClient интерфейс клиента реестра лодок
type BoatServiceClient interface {
	GetBoat(ctx context.Context, boatID int64) (*boatservice.Boat, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
