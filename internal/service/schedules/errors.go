package schedules

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrHasBookings возвращается при попытке удалить расписание с бронированиями
	ErrHasBookings = errors.New("schedule has active bookings")

	// ErrCannotUpdate возвращается, когда расписание нельзя изменить
	ErrCannotUpdate = errors.New("schedule cannot be updated")

	// ErrCannotCancel возвращается, когда расписание нельзя отменить
	ErrCannotCancel = errors.New("schedule cannot be cancelled")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid schedule status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
