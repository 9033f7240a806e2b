package templates

import (
	"context"

	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
)

// TemplateRepository интерфейс репозитория шаблонов
type TemplateRepository interface {
	Create(ctx context.Context, tpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error)
	GetByID(ctx context.Context, id int64) (*domain.ScheduleTemplate, error)
	GetByOwner(ctx context.Context, ownerID int64, activeOnly bool) ([]*domain.ScheduleTemplate, error)
	Deactivate(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
