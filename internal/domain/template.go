package domain

import "time"

// ScheduleTemplate переиспользуемый шаблон маршрута
// Хранит остановки, отрезки и тариф по умолчанию, чтобы владелец мог
// создавать новые расписания без повторного ввода маршрута
// Экземпляры ссылаются на шаблон через Schedule.TemplateID
type ScheduleTemplate struct {
	ID            int64
	OwnerID       int64
	Name          string
	DefaultBoatID *int64
	PricingTier   string
	Stops         []RouteStop
	Segments      []ScheduleSegment
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
