package create_schedule

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/Ferry-ScheduleService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_schedule: invalid input data")

	// ErrInvalidSchedule возвращается, когда структурная валидация маршрута не прошла
	ErrInvalidSchedule = errors.New("create_schedule: invalid schedule definition")

	// ErrScheduleConflict возвращается, когда кандидат пересекается по времени
	// с существующим активным расписанием той же лодки
	ErrScheduleConflict = errors.New("create_schedule: schedule conflicts with existing schedules")

	// ErrBoatNotFound возвращается, когда лодка не найдена в реестре
	ErrBoatNotFound = errors.New("create_schedule: boat not found")

	// ErrBoatNotOwned возвращается, когда лодка принадлежит другому владельцу
	ErrBoatNotOwned = errors.New("create_schedule: boat belongs to another owner")

	// ErrTemplateNotFound возвращается, когда шаблон не найден
	ErrTemplateNotFound = errors.New("create_schedule: template not found")

	// ErrTemplateInactive возвращается при попытке использовать деактивированный шаблон
	ErrTemplateInactive = errors.New("create_schedule: template is deactivated")

	// ErrAccessDenied возвращается, когда шаблон принадлежит другому владельцу
	ErrAccessDenied = errors.New("create_schedule: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_schedule: internal error")
)

// ValidationError агрегированный результат структурной валидации
// Содержит полный список причин: проверки не останавливаются на первой
// ошибке, чтобы вызывающая сторона увидела все нарушения за один проход
type ValidationError struct {
	Reasons []string
}

// Error реализует error
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidSchedule, strings.Join(e.Reasons, "; "))
}

// Unwrap позволяет errors.Is(err, ErrInvalidSchedule)
func (e *ValidationError) Unwrap() error {
	return ErrInvalidSchedule
}

// ConflictError ошибка пересечения с существующими расписаниями
// Несёт список конфликтов для ответа вызывающей стороне
type ConflictError struct {
	Conflicts []domain.ScheduleConflict
}

// Error реализует error; в сообщении перечисляются конфликтующие лодки
func (e *ConflictError) Error() string {
	names := make([]string, 0, len(e.Conflicts))
	seen := make(map[string]struct{}, len(e.Conflicts))
	for _, c := range e.Conflicts {
		if _, ok := seen[c.BoatName]; ok {
			continue
		}
		seen[c.BoatName] = struct{}{}
		names = append(names, c.BoatName)
	}
	return fmt.Sprintf("%v: boats %s", ErrScheduleConflict, strings.Join(names, ", "))
}

// Unwrap позволяет errors.Is(err, ErrScheduleConflict)
func (e *ConflictError) Unwrap() error {
	return ErrScheduleConflict
}
