package deactivate_template

import "context"

type TemplateService interface {
	Deactivate(ctx context.Context, id int64, ownerID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
