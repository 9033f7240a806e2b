package domain

// Default recurrence values
const (
	// DefaultRecurrenceInterval интервал повторения по умолчанию
	DefaultRecurrenceInterval = 1

	// DefaultRecurrenceHorizonDays горизонт генерации, если конечная дата
	// не задана: старт + 30 дней
	DefaultRecurrenceHorizonDays = 30

	// MaxGeneratedInstances жёсткий предохранитель на количество экземпляров,
	// порождаемых из одного шаблона за один вызов. Гарантирует завершение
	// генерации и ограничивает размер батч-вставки при некорректном паттерне
	MaxGeneratedInstances = 100
)

// Business validation constants
const (
	MinRouteStops        = 2
	MinSegments          = 1
	MaxNameLength        = 200
	MaxPricingTierLength = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы расписаний, участвующих в проверке конфликтов
// и видимых пассажирам
var ActiveStatuses = []ScheduleStatus{
	StatusActive,
}

// TerminalStatuses статусы, из которых расписание уже не возвращается
var TerminalStatuses = []ScheduleStatus{
	StatusCompleted,
	StatusCancelled,
}

// ValidStatuses все допустимые статусы расписания
var ValidStatuses = []ScheduleStatus{
	StatusDraft,
	StatusActive,
	StatusSuspended,
	StatusCompleted,
	StatusCancelled,
}

// ToScheduleStatus конвертирует строку в ScheduleStatus с проверкой допустимости
func ToScheduleStatus(s string) (ScheduleStatus, bool) {
	status := ScheduleStatus(s)
	for _, valid := range ValidStatuses {
		if status == valid {
			return status, true
		}
	}
	return "", false
}
