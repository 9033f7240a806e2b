package models

import (
	"time"

	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
	"github.com/m04kA/Ferry-ScheduleService/pkg/types"
)

// Request модели

// StopInput остановка маршрута шаблона
type StopInput struct {
	Name     string  `json:"name"`
	Location *string `json:"location,omitempty"`
}

// SegmentInput отрезок маршрута шаблона
type SegmentInput struct {
	OriginStop    string `json:"originStop"`
	DestStop      string `json:"destStop"`
	DepartureTime string `json:"departureTime"` // "10:00"
	ArrivalTime   string `json:"arrivalTime"`   // "11:30"
}

// CreateTemplateRequest запрос на создание шаблона маршрута
type CreateTemplateRequest struct {
	OwnerID       int64          `json:"ownerId"`
	Name          string         `json:"name"`
	DefaultBoatID *int64         `json:"defaultBoatId,omitempty"`
	PricingTier   string         `json:"pricingTier"`
	Stops         []StopInput    `json:"stops"`
	Segments      []SegmentInput `json:"segments"`
}

// ToDomainTemplate конвертирует request в domain модель
func (r *CreateTemplateRequest) ToDomainTemplate() (*domain.ScheduleTemplate, error) {
	tpl := &domain.ScheduleTemplate{
		OwnerID:       r.OwnerID,
		Name:          r.Name,
		DefaultBoatID: r.DefaultBoatID,
		PricingTier:   r.PricingTier,
		IsActive:      true,
	}

	for i, stop := range r.Stops {
		tpl.Stops = append(tpl.Stops, domain.RouteStop{
			Name:          stop.Name,
			Location:      stop.Location,
			SequenceOrder: i + 1,
		})
	}

	for i, seg := range r.Segments {
		departure, err := types.NewTimeStringFromString(seg.DepartureTime)
		if err != nil {
			return nil, err
		}
		arrival, err := types.NewTimeStringFromString(seg.ArrivalTime)
		if err != nil {
			return nil, err
		}
		tpl.Segments = append(tpl.Segments, domain.ScheduleSegment{
			OriginStop:    seg.OriginStop,
			DestStop:      seg.DestStop,
			DepartureTime: departure,
			ArrivalTime:   arrival,
			SequenceOrder: i + 1,
		})
	}

	return tpl, nil
}

// GetOwnerTemplatesRequest запрос на получение шаблонов владельца
type GetOwnerTemplatesRequest struct {
	OwnerID    int64 `json:"ownerId"`
	ActiveOnly bool  `json:"activeOnly,omitempty"` // Только активные шаблоны
}

// Response модели

// StopResponse остановка маршрута шаблона
type StopResponse struct {
	Name          string  `json:"name"`
	Location      *string `json:"location,omitempty"`
	SequenceOrder int     `json:"sequenceOrder"`
}

// SegmentResponse отрезок маршрута шаблона
type SegmentResponse struct {
	OriginStop    string `json:"originStop"`
	DestStop      string `json:"destStop"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	SequenceOrder int    `json:"sequenceOrder"`
}

// TemplateResponse ответ с данными шаблона
type TemplateResponse struct {
	ID            int64             `json:"id"`
	OwnerID       int64             `json:"ownerId"`
	Name          string            `json:"name"`
	DefaultBoatID *int64            `json:"defaultBoatId,omitempty"`
	PricingTier   string            `json:"pricingTier"`
	Stops         []StopResponse    `json:"stops"`
	Segments      []SegmentResponse `json:"segments"`
	IsActive      bool              `json:"isActive"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// TemplateListResponse ответ со списком шаблонов
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

// Методы конвертации

// FromDomainTemplate конвертирует domain модель в DTO
func FromDomainTemplate(t *domain.ScheduleTemplate) *TemplateResponse {
	if t == nil {
		return nil
	}

	resp := &TemplateResponse{
		ID:            t.ID,
		OwnerID:       t.OwnerID,
		Name:          t.Name,
		DefaultBoatID: t.DefaultBoatID,
		PricingTier:   t.PricingTier,
		Stops:         make([]StopResponse, len(t.Stops)),
		Segments:      make([]SegmentResponse, len(t.Segments)),
		IsActive:      t.IsActive,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}

	for i, stop := range t.Stops {
		resp.Stops[i] = StopResponse{
			Name:          stop.Name,
			Location:      stop.Location,
			SequenceOrder: stop.SequenceOrder,
		}
	}

	for i, seg := range t.Segments {
		resp.Segments[i] = SegmentResponse{
			OriginStop:    seg.OriginStop,
			DestStop:      seg.DestStop,
			DepartureTime: seg.DepartureTime.String(),
			ArrivalTime:   seg.ArrivalTime.String(),
			SequenceOrder: seg.SequenceOrder,
		}
	}

	return resp
}

// FromDomainTemplateList конвертирует список domain моделей в DTO
func FromDomainTemplateList(templates []*domain.ScheduleTemplate) *TemplateListResponse {
	if templates == nil {
		return &TemplateListResponse{
			Templates: []TemplateResponse{},
		}
	}

	resp := &TemplateListResponse{
		Templates: make([]TemplateResponse, len(templates)),
	}

	for i, template := range templates {
		if templateResp := FromDomainTemplate(template); templateResp != nil {
			resp.Templates[i] = *templateResp
		}
	}

	return resp
}
