package bookingservice

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание неизвестно сервису бронирований
	ErrScheduleNotFound = errors.New("bookingservice: schedule not found")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("bookingservice: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingservice: internal error")
)
