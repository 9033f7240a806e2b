package create_schedule

import (
	"time"

	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
	createSchedule "github.com/m04kA/Ferry-ScheduleService/internal/usecase/create_schedule"
	"github.com/m04kA/Ferry-ScheduleService/pkg/types"
)

// StopRequest остановка маршрута в HTTP запросе
type StopRequest struct {
	Name     string  `json:"name"`
	Location *string `json:"location,omitempty"`
}

// SegmentRequest отрезок маршрута в HTTP запросе
type SegmentRequest struct {
	OriginStop    string `json:"originStop"`
	DestStop      string `json:"destStop"`
	DepartureTime string `json:"departureTime"` // "10:00"
	ArrivalTime   string `json:"arrivalTime"`   // "11:30"
}

// RecurrenceRequest правило повторения в HTTP запросе
type RecurrenceRequest struct {
	Type     string  `json:"type"` // daily | weekly | monthly
	Interval int     `json:"interval,omitempty"`
	Weekdays []int   `json:"weekdays,omitempty"` // 0=воскресенье ... 6=суббота
	EndDate  *string `json:"endDate,omitempty"`  // "2026-06-30"
}

// CreateScheduleRequest HTTP request model
type CreateScheduleRequest struct {
	BoatID         int64              `json:"boatId"`
	TemplateID     *int64             `json:"templateId,omitempty"`
	Name           string             `json:"name"`
	StartDate      string             `json:"startDate"` // "2026-06-01"
	Stops          []StopRequest      `json:"stops,omitempty"`
	Segments       []SegmentRequest   `json:"segments,omitempty"`
	Recurrence     *RecurrenceRequest `json:"recurrence,omitempty"`
	PricingTier    string             `json:"pricingTier"`
	Status         *string            `json:"status,omitempty"`
	SaveAsTemplate bool               `json:"saveAsTemplate,omitempty"`
	TemplateName   string             `json:"templateName,omitempty"`
}

// ScheduleResponse одно созданное расписание в HTTP ответе
type ScheduleResponse struct {
	ID           int64              `json:"id"`
	OwnerID      int64              `json:"ownerId"`
	BoatID       int64              `json:"boatId"`
	TemplateID   *int64             `json:"templateId,omitempty"`
	Name         string             `json:"name"`
	BoatName     string             `json:"boatName"`
	ScheduleDate string             `json:"scheduleDate"`
	Stops        []StopResponse     `json:"stops"`
	Segments     []SegmentResponse  `json:"segments"`
	Recurrence   *RecurrenceRequest `json:"recurrence,omitempty"`
	PricingTier  string             `json:"pricingTier"`
	Status       string             `json:"status"`
	CreatedAt    string             `json:"createdAt"`
	UpdatedAt    string             `json:"updatedAt"`
}

// StopResponse остановка маршрута в HTTP ответе
type StopResponse struct {
	Name          string  `json:"name"`
	Location      *string `json:"location,omitempty"`
	SequenceOrder int     `json:"sequenceOrder"`
}

// SegmentResponse отрезок маршрута в HTTP ответе
type SegmentResponse struct {
	OriginStop      string `json:"originStop"`
	DestStop        string `json:"destStop"`
	DepartureTime   string `json:"departureTime"`
	ArrivalTime     string `json:"arrivalTime"`
	DurationMinutes int    `json:"durationMinutes"`
	SequenceOrder   int    `json:"sequenceOrder"`
}

// CreateScheduleResponse HTTP response model
type CreateScheduleResponse struct {
	Schedules       []ScheduleResponse `json:"schedules"`
	SavedTemplateID *int64             `json:"savedTemplateId,omitempty"`
}

// ConflictResponse одно пересечение в ответе 409
type ConflictResponse struct {
	ScheduleID     int64  `json:"scheduleId"`
	BoatName       string `json:"boatName"`
	ConflictTime   string `json:"conflictTime"`
	OverlapMinutes int    `json:"overlapMinutes"`
}

// ConflictErrorResponse тело ответа 409 Conflict
type ConflictErrorResponse struct {
	Error     string             `json:"error"`
	Conflicts []ConflictResponse `json:"conflicts"`
}

// ValidationErrorResponse тело ответа 422 Unprocessable Entity
type ValidationErrorResponse struct {
	Error   string   `json:"error"`
	Reasons []string `json:"reasons"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateScheduleRequest) ToUseCaseRequest(ownerID int64) (*createSchedule.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	req := &createSchedule.Request{
		OwnerID:        ownerID,
		BoatID:         r.BoatID,
		TemplateID:     r.TemplateID,
		Name:           r.Name,
		StartDate:      startDate,
		PricingTier:    r.PricingTier,
		Status:         r.Status,
		SaveAsTemplate: r.SaveAsTemplate,
		TemplateName:   r.TemplateName,
	}

	for _, stop := range r.Stops {
		req.Stops = append(req.Stops, createSchedule.StopInput{
			Name:     stop.Name,
			Location: stop.Location,
		})
	}

	for _, seg := range r.Segments {
		departure, err := types.NewTimeStringFromString(seg.DepartureTime)
		if err != nil {
			return nil, err
		}
		arrival, err := types.NewTimeStringFromString(seg.ArrivalTime)
		if err != nil {
			return nil, err
		}
		req.Segments = append(req.Segments, createSchedule.SegmentInput{
			OriginStop:    seg.OriginStop,
			DestStop:      seg.DestStop,
			DepartureTime: departure,
			ArrivalTime:   arrival,
		})
	}

	if r.Recurrence != nil {
		rec := &createSchedule.RecurrenceInput{
			Type:     r.Recurrence.Type,
			Interval: r.Recurrence.Interval,
			Weekdays: r.Recurrence.Weekdays,
		}
		if r.Recurrence.EndDate != nil {
			endDate, err := time.Parse(domain.DateFormat, *r.Recurrence.EndDate)
			if err != nil {
				return nil, err
			}
			rec.EndDate = &endDate
		}
		req.Recurrence = rec
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createSchedule.Response) *CreateScheduleResponse {
	result := &CreateScheduleResponse{
		Schedules:       make([]ScheduleResponse, len(resp.Schedules)),
		SavedTemplateID: resp.SavedTemplateID,
	}

	for i, s := range resp.Schedules {
		schedule := ScheduleResponse{
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
			Status:       s.Status,
			CreatedAt:    s.CreatedAt.Format(time.RFC3339),
			UpdatedAt:    s.UpdatedAt.Format(time.RFC3339),
		}

		for j, stop := range s.Stops {
			schedule.Stops[j] = StopResponse{
				Name:          stop.Name,
				Location:      stop.Location,
				SequenceOrder: stop.SequenceOrder,
			}
		}
		for j, seg := range s.Segments {
			schedule.Segments[j] = SegmentResponse{
				OriginStop:      seg.OriginStop,
				DestStop:        seg.DestStop,
				DepartureTime:   seg.DepartureTime.String(),
				ArrivalTime:     seg.ArrivalTime.String(),
				DurationMinutes: seg.DurationMinutes(),
				SequenceOrder:   seg.SequenceOrder,
			}
		}

		if s.Recurrence != nil {
			rec := &RecurrenceRequest{
				Type:     string(s.Recurrence.Type),
				Interval: s.Recurrence.NormalizedInterval(),
			}
			for _, wd := range s.Recurrence.Weekdays {
				rec.Weekdays = append(rec.Weekdays, int(wd))
			}
			if s.Recurrence.EndDate != nil {
				endDate := s.Recurrence.EndDate.Format(domain.DateFormat)
				rec.EndDate = &endDate
			}
			schedule.Recurrence = rec
		}

		result.Schedules[i] = schedule
	}

	return result
}
