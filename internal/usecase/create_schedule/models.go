package create_schedule

import (
	"time"

	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
	"github.com/m04kA/Ferry-ScheduleService/pkg/types"
)

// StopInput остановка маршрута во входных данных
type StopInput struct {
	Name     string  // например, "HA.Dhidhdhoo"
	Location *string // опциональная гео-ссылка
}

// SegmentInput отрезок рейса во входных данных
// Времена задаются как время суток; конкретные даты проставляются
// при материализации экземпляров
type SegmentInput struct {
	OriginStop    string
	DestStop      string
	DepartureTime types.TimeString
	ArrivalTime   types.TimeString
}

// RecurrenceInput правило повторения во входных данных
type RecurrenceInput struct {
	Type     string     // daily | weekly | monthly
	Interval int        // повтор каждые N единиц, 0 = по умолчанию
	Weekdays []int      // номера дней недели (0 = воскресенье), только для weekly
	EndDate  *time.Time // граница генерации, по умолчанию старт + 30 дней
}

// ToDomain конвертирует входной паттерн в доменный
func (r *RecurrenceInput) ToDomain() *domain.RecurrencePattern {
	if r == nil {
		return nil
	}
	pattern := &domain.RecurrencePattern{
		Type:     domain.RecurrenceType(r.Type),
		Interval: r.Interval,
		EndDate:  r.EndDate,
	}
	for _, wd := range r.Weekdays {
		pattern.Weekdays = append(pattern.Weekdays, time.Weekday(wd))
	}
	return pattern
}

// Request модель запроса на создание расписания
// Маршрут задаётся либо явно (Stops + Segments), либо ссылкой на шаблон
// (TemplateID) - тогда пустые поля маршрута заполняются из шаблона
type Request struct {
	OwnerID        int64            // ID владельца (из заголовка аутентификации)
	BoatID         int64            // ID лодки
	TemplateID     *int64           // Создание из шаблона (опционально)
	Name           string           // Название расписания
	StartDate      time.Time        // Дата первого рейса (без времени)
	Stops          []StopInput      // Остановки маршрута по порядку
	Segments       []SegmentInput   // Отрезки рейса по порядку
	Recurrence     *RecurrenceInput // Правило повторения (опционально)
	PricingTier    string           // Тарифная метка
	Status         *string          // Запрошенный статус, по умолчанию ACTIVE
	SaveAsTemplate bool             // Сохранить маршрут как шаблон
	TemplateName   string           // Название нового шаблона (при SaveAsTemplate)
}

// ScheduleData созданный экземпляр расписания в ответе
type ScheduleData struct {
	ID           int64
	OwnerID      int64
	BoatID       int64
	BoatName     string
	TemplateID   *int64
	Name         string
	ScheduleDate time.Time
	PricingTier  string
	Status       string
	Stops        []domain.RouteStop
	Segments     []domain.ScheduleSegment
	Recurrence   *domain.RecurrencePattern
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Response модель ответа: все созданные экземпляры
// (один для одиночного рейса, до MaxGeneratedInstances для повторяющегося)
type Response struct {
	Schedules       []ScheduleData
	SavedTemplateID *int64 // ID шаблона, если запрошено SaveAsTemplate
}

func fromDomainSchedule(s *domain.Schedule) ScheduleData {
	return ScheduleData{
		ID:           s.ID,
		OwnerID:      s.OwnerID,
		BoatID:       s.BoatID,
		BoatName:     s.BoatName,
		TemplateID:   s.TemplateID,
		Name:         s.Name,
		ScheduleDate: s.ScheduleDate,
		PricingTier:  s.PricingTier,
		Status:       string(s.Status),
		Stops:        s.Stops,
		Segments:     s.Segments,
		Recurrence:   s.Recurrence,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
