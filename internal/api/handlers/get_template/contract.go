package get_template

import (
	"context"

	"github.com/m04kA/Ferry-ScheduleService/internal/service/templates/models"
)

type TemplateService interface {
	GetByID(ctx context.Context, id int64, ownerID int64) (*models.TemplateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
