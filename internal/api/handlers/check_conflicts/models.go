package check_conflicts

import (
	"time"

	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
	checkConflicts "github.com/m04kA/Ferry-ScheduleService/internal/usecase/check_conflicts"
	"github.com/m04kA/Ferry-ScheduleService/pkg/types"
)

// SegmentRequest отрезок маршрута-кандидата в HTTP запросе
type SegmentRequest struct {
	OriginStop    string `json:"originStop"`
	DestStop      string `json:"destStop"`
	DepartureTime string `json:"departureTime"` // "10:00"
	ArrivalTime   string `json:"arrivalTime"`   // "11:30"
}

// CheckConflictsRequest HTTP request model
type CheckConflictsRequest struct {
	BoatID   int64            `json:"boatId"`
	Date     string           `json:"date"` // "2026-06-01"
	Segments []SegmentRequest `json:"segments"`
}

// ConflictResponse одно пересечение в HTTP ответе
type ConflictResponse struct {
	ScheduleID     int64  `json:"scheduleId"`
	BoatName       string `json:"boatName"`
	ConflictTime   string `json:"conflictTime"`
	OverlapMinutes int    `json:"overlapMinutes"`
}

// CheckConflictsResponse HTTP response model
type CheckConflictsResponse struct {
	BoatID       int64              `json:"boatId"`
	Date         string             `json:"date"`
	HasConflicts bool               `json:"hasConflicts"`
	Conflicts    []ConflictResponse `json:"conflicts"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckConflictsRequest) ToUseCaseRequest(ownerID int64) (*checkConflicts.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	req := &checkConflicts.Request{
		OwnerID: ownerID,
		BoatID:  r.BoatID,
		Date:    date,
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
		req.Segments = append(req.Segments, checkConflicts.SegmentInput{
			OriginStop:    seg.OriginStop,
			DestStop:      seg.DestStop,
			DepartureTime: departure,
			ArrivalTime:   arrival,
		})
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkConflicts.Response) *CheckConflictsResponse {
	result := &CheckConflictsResponse{
		BoatID:       resp.BoatID,
		Date:         resp.Date.Format(domain.DateFormat),
		HasConflicts: resp.HasConflicts,
		Conflicts:    make([]ConflictResponse, len(resp.Conflicts)),
	}

	for i, c := range resp.Conflicts {
		result.Conflicts[i] = ConflictResponse{
			ScheduleID:     c.ScheduleID,
			BoatName:       c.BoatName,
			ConflictTime:   c.ConflictTime.String(),
			OverlapMinutes: c.OverlapMinutes,
		}
	}

	return result
}
