package check_conflicts

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("invalid input")

	// ErrBoatNotFound лодка не найдена
	ErrBoatNotFound = errors.New("boat not found")

	// ErrBoatNotOwned лодка принадлежит другому владельцу
	ErrBoatNotOwned = errors.New("boat belongs to another owner")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
