package models

import (
	"errors"
	"time"

	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid schedule status")
)

// Request модели

// GetOwnerSchedulesRequest запрос на получение расписаний владельца
type GetOwnerSchedulesRequest struct {
	OwnerID   int64      `json:"ownerId"`
	BoatID    *int64     `json:"boatId,omitempty"`    // Фильтр по лодке (опционально)
	Status    *string    `json:"status,omitempty"`    // Фильтр по статусу (опционально)
	StartDate *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate   *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetOwnerSchedulesRequest) ToDomainFilter() (domain.OwnerSchedulesFilter, error) {
	filter := domain.OwnerSchedulesFilter{
		OwnerID:   r.OwnerID,
		BoatID:    r.BoatID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainScheduleStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateScheduleRequest запрос на частичное обновление расписания
// Обновляются только заданные поля; маршрут и времена отрезков неизменяемы -
// для них создаётся новое расписание
type UpdateScheduleRequest struct {
	OwnerID     int64   `json:"ownerId"`
	Name        *string `json:"name,omitempty"`
	PricingTier *string `json:"pricingTier,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// ToDomainUpdate конвертирует request в domain модель обновления
func (r *UpdateScheduleRequest) ToDomainUpdate() (domain.ScheduleUpdate, error) {
	update := domain.ScheduleUpdate{
		Name:        r.Name,
		PricingTier: r.PricingTier,
	}

	if r.Status != nil {
		status, err := ToDomainScheduleStatus(*r.Status)
		if err != nil {
			return update, err
		}
		update.Status = &status
	}

	return update, nil
}

// Response модели

// StopResponse остановка маршрута
type StopResponse struct {
	Name          string  `json:"name"`
	Location      *string `json:"location,omitempty"`
	SequenceOrder int     `json:"sequenceOrder"`
}

// SegmentResponse отрезок маршрута
type SegmentResponse struct {
	OriginStop      string    `json:"originStop"`
	DestStop        string    `json:"destStop"`
	DepartureTime   string    `json:"departureTime"` // "10:00"
	ArrivalTime     string    `json:"arrivalTime"`   // "11:30"
	DepartsAt       time.Time `json:"departsAt"`
	ArrivesAt       time.Time `json:"arrivesAt"`
	DurationMinutes int       `json:"durationMinutes"`
	SequenceOrder   int       `json:"sequenceOrder"`
}

// RecurrenceResponse правило повторения
type RecurrenceResponse struct {
	Type     string     `json:"type"`
	Interval int        `json:"interval"`
	Weekdays []int      `json:"weekdays,omitempty"`
	EndDate  *time.Time `json:"endDate,omitempty"`
}

// ScheduleResponse ответ с данными расписания
type ScheduleResponse struct {
	ID           int64               `json:"id"`
	OwnerID      int64               `json:"ownerId"`
	BoatID       int64               `json:"boatId"`
	TemplateID   *int64              `json:"templateId,omitempty"`
	Name         string              `json:"name"`
	BoatName     string              `json:"boatName"`
	ScheduleDate string              `json:"scheduleDate"` // "2026-06-01"
	Stops        []StopResponse      `json:"stops"`
	Segments     []SegmentResponse   `json:"segments"`
	Recurrence   *RecurrenceResponse `json:"recurrence,omitempty"`
	PricingTier  string              `json:"pricingTier"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// ScheduleListResponse ответ со списком расписаний
type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
}

// Методы конвертации

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.Schedule) *ScheduleResponse {
	if s == nil {
		return nil
	}

	resp := &ScheduleResponse{
		ID:           s.ID,
		OwnerID:      s.OwnerID,
		BoatID:       s.BoatID,
		TemplateID:   s.TemplateID,
		Name:         s.Name,
		BoatName:     s.BoatName,
		ScheduleDate: s.ScheduleDate.Format(domain.DateFormat),
		Stops:        make([]StopResponse, len(s.Stops)),
		Segments:     make([]SegmentResponse, len(s.Segments)),
		PricingTier:  s.PricingTier,
		Status:       string(s.Status),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}

	for i, stop := range s.Stops {
		resp.Stops[i] = StopResponse{
			Name:          stop.Name,
			Location:      stop.Location,
			SequenceOrder: stop.SequenceOrder,
		}
	}

	for i, seg := range s.Segments {
		resp.Segments[i] = SegmentResponse{
			OriginStop:      seg.OriginStop,
			DestStop:        seg.DestStop,
			DepartureTime:   seg.DepartureTime.String(),
			ArrivalTime:     seg.ArrivalTime.String(),
			DepartsAt:       seg.DepartsAt,
			ArrivesAt:       seg.ArrivesAt,
			DurationMinutes: seg.DurationMinutes(),
			SequenceOrder:   seg.SequenceOrder,
		}
	}

	if s.Recurrence != nil {
		rec := &RecurrenceResponse{
			Type:     string(s.Recurrence.Type),
			Interval: s.Recurrence.NormalizedInterval(),
			EndDate:  s.Recurrence.EndDate,
		}
		for _, wd := range s.Recurrence.Weekdays {
			rec.Weekdays = append(rec.Weekdays, int(wd))
		}
		resp.Recurrence = rec
	}

	return resp
}

// FromDomainScheduleList конвертирует список domain моделей в DTO
func FromDomainScheduleList(schedules []*domain.Schedule) *ScheduleListResponse {
	if schedules == nil {
		return &ScheduleListResponse{
			Schedules: []ScheduleResponse{},
		}
	}

	resp := &ScheduleListResponse{
		Schedules: make([]ScheduleResponse, len(schedules)),
	}

	for i, schedule := range schedules {
		if scheduleResp := FromDomainSchedule(schedule); scheduleResp != nil {
			resp.Schedules[i] = *scheduleResp
		}
	}

	return resp
}

// ToDomainScheduleStatus конвертирует строку в domain.ScheduleStatus с валидацией
func ToDomainScheduleStatus(status string) (domain.ScheduleStatus, error) {
	s, ok := domain.ToScheduleStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}
