package boatservice

import "errors"

var (
	// ErrBoatNotFound возвращается, когда лодка не найдена в реестре
	ErrBoatNotFound = errors.New("boatservice: boat not found")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("boatservice: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("boatservice: internal error")
)
