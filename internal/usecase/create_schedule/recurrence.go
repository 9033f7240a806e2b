package create_schedule

import (
	"time"

	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
)

// expandDates разворачивает правило повторения в конечный упорядоченный
// список календарных дат, начиная со startDate
//
// Без паттерна возвращается ровно одна дата - startDate.
// С паттерном даты перебираются по одной:
//   - daily: каждая дата подходит, шаг - interval дней
//   - weekly: дата подходит, если её день недели входит в набор паттерна
//     (пустой набор = все дни - поведение сохранено из исходной системы),
//     шаг всегда 1 день, неподходящие дни просто пропускаются
//   - monthly: дата подходит, если её число совпадает с числом опорной
//     стартовой даты; после подходящей даты шаг interval месяцев, иначе
//     1 день (так февраль "догоняет" 31-е число в следующем подходящем месяце)
//
// Генерация останавливается, когда дата выходит за конечную границу
// (по умолчанию startDate + domain.DefaultRecurrenceHorizonDays) либо когда
// набрано domain.MaxGeneratedInstances дат. Кандидат строго растёт минимум
// на день за итерацию, поэтому завершение гарантировано.
// startDate позже конечной границы даёт пустой список - это не ошибка
func expandDates(startDate time.Time, pattern *domain.RecurrencePattern) []time.Time {
	start := truncateToDay(startDate)

	if pattern == nil {
		return []time.Time{start}
	}

	end := start.AddDate(0, 0, domain.DefaultRecurrenceHorizonDays)
	if pattern.EndDate != nil {
		end = truncateToDay(*pattern.EndDate)
	}

	interval := pattern.NormalizedInterval()
	dates := make([]time.Time, 0)
	cand := start

	for !cand.After(end) && len(dates) < domain.MaxGeneratedInstances {
		switch pattern.Type {
		case domain.RecurrenceDaily:
			dates = append(dates, cand)
			cand = cand.AddDate(0, 0, interval)

		case domain.RecurrenceWeekly:
			if pattern.WeekdayEligible(cand.Weekday()) {
				dates = append(dates, cand)
			}
			cand = cand.AddDate(0, 0, 1)

		case domain.RecurrenceMonthly:
			if cand.Day() == start.Day() {
				dates = append(dates, cand)
				cand = cand.AddDate(0, interval, 0)
			} else {
				cand = cand.AddDate(0, 0, 1)
			}

		default:
			// Неизвестный тип отсекается валидацией; сюда не попадаем
			return dates
		}
	}

	return dates
}

// materializeSchedule собирает один экземпляр расписания на конкретную дату:
// копирует маршрут, проставляет каждому отрезку абсолютные timestamps
// (время суток шаблона, наложенное на дату) и переносит тариф и правило
// повторения по ссылке
func materializeSchedule(req *Request, date time.Time, boatName string, status domain.ScheduleStatus) *domain.Schedule {
	stops := make([]domain.RouteStop, len(req.Stops))
	for i, stop := range req.Stops {
		stops[i] = domain.RouteStop{
			Name:          stop.Name,
			Location:      stop.Location,
			SequenceOrder: i + 1,
		}
	}

	segments := make([]domain.ScheduleSegment, len(req.Segments))
	for i, seg := range req.Segments {
		segments[i] = domain.ScheduleSegment{
			OriginStop:    seg.OriginStop,
			DestStop:      seg.DestStop,
			DepartureTime: seg.DepartureTime,
			ArrivalTime:   seg.ArrivalTime,
			DepartsAt:     seg.DepartureTime.OnDate(date),
			ArrivesAt:     seg.ArrivalTime.OnDate(date),
			SequenceOrder: i + 1,
		}
	}

	return &domain.Schedule{
		OwnerID:      req.OwnerID,
		BoatID:       req.BoatID,
		TemplateID:   req.TemplateID,
		Name:         req.Name,
		BoatName:     boatName,
		ScheduleDate: date,
		Stops:        stops,
		Segments:     segments,
		Recurrence:   req.Recurrence.ToDomain(),
		PricingTier:  req.PricingTier,
		Status:       status,
	}
}

// truncateToDay обнуляет время, оставляя только календарную дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
