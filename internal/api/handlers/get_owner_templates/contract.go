package get_owner_templates

import (
	"context"

	"github.com/m04kA/Ferry-ScheduleService/internal/service/templates/models"
)

type TemplateService interface {
	GetOwnerTemplates(ctx context.Context, req *models.GetOwnerTemplatesRequest) (*models.TemplateListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
