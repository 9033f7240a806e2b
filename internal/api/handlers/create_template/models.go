package create_template

import "github.com/m04kA/Ferry-ScheduleService/internal/service/templates/models"

// CreateTemplateRequest HTTP request model
type CreateTemplateRequest struct {
	Name          string                `json:"name"`
	DefaultBoatID *int64                `json:"defaultBoatId,omitempty"`
	PricingTier   string                `json:"pricingTier"`
	Stops         []models.StopInput    `json:"stops"`
	Segments      []models.SegmentInput `json:"segments"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateTemplateRequest) ToServiceRequest(ownerID int64) *models.CreateTemplateRequest {
	return &models.CreateTemplateRequest{
		OwnerID:       ownerID,
		Name:          r.Name,
		DefaultBoatID: r.DefaultBoatID,
		PricingTier:   r.PricingTier,
		Stops:         r.Stops,
		Segments:      r.Segments,
	}
}
