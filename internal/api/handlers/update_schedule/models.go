package update_schedule

import "github.com/m04kA/Ferry-ScheduleService/internal/service/schedules/models"

// UpdateScheduleRequest HTTP request model
// Обновляются только переданные поля; маршрут и времена отрезков неизменяемы
type UpdateScheduleRequest struct {
	Name        *string `json:"name,omitempty"`
	PricingTier *string `json:"pricingTier,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(ownerID int64) *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		OwnerID:     ownerID,
		Name:        r.Name,
		PricingTier: r.PricingTier,
		Status:      r.Status,
	}
}
