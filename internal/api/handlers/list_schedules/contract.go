package list_schedules

import (
	"context"

	"github.com/m04kA/Ferry-ScheduleService/internal/service/schedules/models"
)

type ScheduleService interface {
	GetOwnerSchedules(ctx context.Context, req *models.GetOwnerSchedulesRequest) (*models.ScheduleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
