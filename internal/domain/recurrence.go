package domain

import "time"

// RecurrenceType тип повторения расписания
type RecurrenceType string

const (
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
)

// IsValid проверяет, что тип повторения известен
func (t RecurrenceType) IsValid() bool {
	return t == RecurrenceDaily || t == RecurrenceWeekly || t == RecurrenceMonthly
}

// RecurrencePattern правило повторения шаблона рейса
// Тип полностью определяет, какие поля учитываются:
// - daily: Interval (каждые N дней)
// - weekly: Weekdays (пустой набор = все дни недели), Interval не
//   используется при пропуске дней
// - monthly: Interval (каждые N месяцев), день месяца берётся из
//   опорной стартовой даты
type RecurrencePattern struct {
	Type     RecurrenceType
	Interval int // повтор каждые N единиц, 0 трактуется как DefaultRecurrenceInterval
	Weekdays []time.Weekday
	EndDate  *time.Time // верхняя граница генерации, по умолчанию старт + DefaultRecurrenceHorizonDays
}

// NormalizedInterval возвращает интервал с подстановкой значения по умолчанию
func (p *RecurrencePattern) NormalizedInterval() int {
	if p.Interval <= 0 {
		return DefaultRecurrenceInterval
	}
	return p.Interval
}

// WeekdayEligible возвращает true, если день недели входит в набор паттерна
// Пустой набор означает "все дни недели"
func (p *RecurrencePattern) WeekdayEligible(day time.Weekday) bool {
	if len(p.Weekdays) == 0 {
		return true
	}
	for _, wd := range p.Weekdays {
		if wd == day {
			return true
		}
	}
	return false
}
