package boatservice

// Boat данные лодки из реестра BoatService
type Boat struct {
	ID           int64   `json:"id"`
	OwnerID      int64   `json:"ownerId"`
	Name         string  `json:"name"`
	Registration *string `json:"registration,omitempty"`
	Capacity     int     `json:"capacity"`
	IsActive     bool    `json:"isActive"`
}
