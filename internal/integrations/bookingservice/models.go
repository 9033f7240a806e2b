package bookingservice

// BookingsCount количество бронирований расписания
type BookingsCount struct {
	ScheduleID int64 `json:"scheduleId"`
	Count      int   `json:"count"`
}
