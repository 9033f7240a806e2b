package update_schedule

import (
	"context"

	"github.com/m04kA/Ferry-ScheduleService/internal/service/schedules/models"
)

type ScheduleService interface {
	Update(ctx context.Context, id int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
