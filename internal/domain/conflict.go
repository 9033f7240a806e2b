package domain

import "github.com/m04kA/Ferry-ScheduleService/pkg/types"

// ScheduleConflict пересечение по времени между кандидатом и существующим
// активным расписанием той же лодки в тот же календарный день
// Вычисляемый результат, в БД не хранится
type ScheduleConflict struct {
	ScheduleID     int64            // ID существующего расписания
	BoatName       string           // имя лодки для сообщения об ошибке
	ConflictTime   types.TimeString // время отправления конфликтующего отрезка
	OverlapMinutes int              // длительность пересечения в минутах
}

// OverlapMinutes вычисляет пересечение двух интервалов времени суток в минутах
// Граничные случаи пересечением не считаются: если один отрезок заканчивается
// ровно там, где начинается другой - это 0 минут
//
// Примеры:
// - 10:00-11:00 и 10:30-10:45 → 15 минут
// - 10:00-11:00 и 11:00-12:00 → 0 минут (граничат)
// - 10:00-11:00 и 12:00-13:00 → 0 минут
func OverlapMinutes(dep1, arr1, dep2, arr2 types.TimeString) int {
	start := dep1.Minutes()
	if dep2.Minutes() > start {
		start = dep2.Minutes()
	}

	end := arr1.Minutes()
	if arr2.Minutes() < end {
		end = arr2.Minutes()
	}

	if end <= start {
		return 0
	}
	return end - start
}

// FindConflicts сопоставляет каждый отрезок кандидата с каждым отрезком
// каждого существующего расписания и собирает все пересечения > 0 минут
//
// Проверка намеренно ограничена одной лодкой и одним календарным днём
// (выборку по этому окну делает репозиторий): контендом является физический
// ресурс - одна лодка не может идти двумя пересекающимися рейсами
func FindConflicts(candidate []ScheduleSegment, existing []*Schedule) []ScheduleConflict {
	var conflicts []ScheduleConflict

	for _, sched := range existing {
		for _, existingSeg := range sched.Segments {
			for _, candidateSeg := range candidate {
				overlap := OverlapMinutes(
					candidateSeg.DepartureTime, candidateSeg.ArrivalTime,
					existingSeg.DepartureTime, existingSeg.ArrivalTime,
				)
				if overlap > 0 {
					conflicts = append(conflicts, ScheduleConflict{
						ScheduleID:     sched.ID,
						BoatName:       sched.BoatName,
						ConflictTime:   existingSeg.DepartureTime,
						OverlapMinutes: overlap,
					})
				}
			}
		}
	}

	return conflicts
}
