package domain

import (
	"time"

	"github.com/m04kA/Ferry-ScheduleService/pkg/types"
)

// ScheduleStatus статус жизненного цикла расписания
type ScheduleStatus string

const (
	StatusDraft     ScheduleStatus = "DRAFT"
	StatusActive    ScheduleStatus = "ACTIVE"
	StatusSuspended ScheduleStatus = "SUSPENDED"
	StatusCompleted ScheduleStatus = "COMPLETED"
	StatusCancelled ScheduleStatus = "CANCELLED"
)

// RouteStop остановка маршрута (остров/причал)
// Принадлежит родительскому расписанию или шаблону, самостоятельного
// жизненного цикла не имеет
type RouteStop struct {
	ID            int64
	ParentID      int64  // id родителя - расписания или шаблона
	Name          string // например, "HA.Dhidhdhoo" или "Male"
	Location      *string
	SequenceOrder int // позиция в маршруте, с 1
}

// ScheduleSegment один отрезок рейса между двумя соседними остановками
// DepartureTime/ArrivalTime - времена суток из шаблона рейса;
// DepartsAt/ArrivesAt - абсолютные timestamps, проставленные при
// материализации экземпляра на конкретную дату
type ScheduleSegment struct {
	ID            int64
	ParentID      int64 // id родителя - расписания или шаблона
	OriginStop    string
	DestStop      string
	DepartureTime types.TimeString
	ArrivalTime   types.TimeString
	DepartsAt     time.Time
	ArrivesAt     time.Time
	SequenceOrder int
}

// DurationMinutes длительность отрезка в минутах
func (s *ScheduleSegment) DurationMinutes() int {
	return s.DepartureTime.MinutesBetween(s.ArrivalTime)
}

// Schedule расписание рейса - агрегат с остановками и отрезками
// Может быть как одиночным рейсом, так и экземпляром, порождённым
// из повторяющегося шаблона (тогда заполнен TemplateID и Recurrence)
type Schedule struct {
	ID           int64
	OwnerID      int64
	BoatID       int64
	TemplateID   *int64
	Name         string
	ScheduleDate time.Time // календарная дата рейса
	Stops        []RouteStop
	Segments     []ScheduleSegment
	Recurrence   *RecurrencePattern
	PricingTier  string
	Status       ScheduleStatus

	// Денормализованное имя лодки для списков и сообщений о конфликтах
	BoatName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true для расписания, участвующего в проверке конфликтов
func (s *Schedule) IsActive() bool {
	return s.Status == StatusActive
}

// CanBeCancelled возвращает true, если расписание ещё можно отменить
func (s *Schedule) CanBeCancelled() bool {
	return s.Status != StatusCancelled && s.Status != StatusCompleted
}

// CanBeUpdated возвращает true, если расписание можно редактировать
func (s *Schedule) CanBeUpdated() bool {
	return s.Status == StatusDraft || s.Status == StatusActive || s.Status == StatusSuspended
}

// OwnerSchedulesFilter фильтр для получения расписаний владельца
type OwnerSchedulesFilter struct {
	OwnerID   int64           // Обязательный параметр
	BoatID    *int64          // Фильтр по лодке (опционально)
	Status    *ScheduleStatus // Фильтр по статусу (опционально)
	StartDate *time.Time      // Начало периода (опционально)
	EndDate   *time.Time      // Конец периода (опционально)
}

// ScheduleUpdate частичное обновление полей расписания
// Обновляются только не-nil поля; пере-валидация маршрута и повторная
// проверка конфликтов при обновлении не выполняются
type ScheduleUpdate struct {
	Name        *string
	PricingTier *string
	Status      *ScheduleStatus
}

// IsEmpty возвращает true, если не задано ни одно поле для обновления
func (u *ScheduleUpdate) IsEmpty() bool {
	return u.Name == nil && u.PricingTier == nil && u.Status == nil
}
