package check_conflicts

import (
	"time"

	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
	"github.com/m04kA/Ferry-ScheduleService/pkg/types"
)

// Request модель запроса предпросмотра конфликтов
type Request struct {
	OwnerID  int64          // ID владельца (для проверки прав на лодку)
	BoatID   int64          // ID лодки
	Date     time.Time      // Календарный день проверки (без времени)
	Segments []SegmentInput // Отрезки кандидата
}

// SegmentInput отрезок маршрута-кандидата
type SegmentInput struct {
	OriginStop    string           // Остановка отправления
	DestStop      string           // Остановка прибытия
	DepartureTime types.TimeString // Время отправления ("10:00")
	ArrivalTime   types.TimeString // Время прибытия ("11:30")
}

// Response модель ответа предпросмотра конфликтов
type Response struct {
	BoatID       int64          // ID проверенной лодки
	Date         time.Time      // Проверенный день
	HasConflicts bool           // Есть ли хотя бы одно пересечение
	Conflicts    []ConflictData // Найденные пересечения
}

// ConflictData одно пересечение с существующим расписанием
type ConflictData struct {
	ScheduleID     int64            // ID существующего расписания
	BoatName       string           // Имя лодки
	ConflictTime   types.TimeString // Время отправления конфликтующего отрезка
	OverlapMinutes int              // Длительность пересечения в минутах
}

func toDomainSegments(segments []SegmentInput) []domain.ScheduleSegment {
	result := make([]domain.ScheduleSegment, len(segments))
	for i, seg := range segments {
		result[i] = domain.ScheduleSegment{
			OriginStop:    seg.OriginStop,
			DestStop:      seg.DestStop,
			DepartureTime: seg.DepartureTime,
			ArrivalTime:   seg.ArrivalTime,
			SequenceOrder: i + 1,
		}
	}
	return result
}

func fromDomainConflicts(conflicts []domain.ScheduleConflict) []ConflictData {
	result := make([]ConflictData, len(conflicts))
	for i, c := range conflicts {
		result[i] = ConflictData{
			ScheduleID:     c.ScheduleID,
			BoatName:       c.BoatName,
			ConflictTime:   c.ConflictTime,
			OverlapMinutes: c.OverlapMinutes,
		}
	}
	return result
}
