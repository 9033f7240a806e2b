package create_schedule

import (
	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
)

// findConflicts проверяет отрезки кандидата против существующих расписаний
// Алгоритм пересечения живёт в domain и разделяется с предпросмотром конфликтов
func findConflicts(candidate []SegmentInput, existing []*domain.Schedule) []domain.ScheduleConflict {
	segments := make([]domain.ScheduleSegment, len(candidate))
	for i, seg := range candidate {
		segments[i] = domain.ScheduleSegment{
			OriginStop:    seg.OriginStop,
			DestStop:      seg.DestStop,
			DepartureTime: seg.DepartureTime,
			ArrivalTime:   seg.ArrivalTime,
			SequenceOrder: i + 1,
		}
	}

	return domain.FindConflicts(segments, existing)
}
