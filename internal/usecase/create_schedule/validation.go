package create_schedule

import (
	"fmt"
	"strings"
)

// validationResult результат структурной валидации маршрута
type validationResult struct {
	IsValid bool
	Errors  []string
}

// validateRequest валидирует базовые входные данные запроса
func validateRequest(req *Request) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.TemplateID != nil && *req.TemplateID <= 0 {
		return fmt.Errorf("%w: templateID must be positive", ErrInvalidInput)
	}

	if req.Recurrence != nil {
		if err := validateRecurrence(req.Recurrence); err != nil {
			return err
		}
	}

	if req.SaveAsTemplate && strings.TrimSpace(req.TemplateName) == "" {
		return fmt.Errorf("%w: templateName is required when saving as template", ErrInvalidInput)
	}

	return nil
}

// validateRecurrence проверяет правило повторения
func validateRecurrence(rec *RecurrenceInput) error {
	pattern := rec.ToDomain()
	if !pattern.Type.IsValid() {
		return fmt.Errorf("%w: unknown recurrence type %q", ErrInvalidInput, rec.Type)
	}

	if rec.Interval < 0 {
		return fmt.Errorf("%w: recurrence interval must not be negative", ErrInvalidInput)
	}

	for _, wd := range rec.Weekdays {
		if wd < 0 || wd > 6 {
			return fmt.Errorf("%w: weekday %d is out of range 0-6", ErrInvalidInput, wd)
		}
	}

	return nil
}

// validateSchedule структурная валидация определения расписания
//
// Все проверки выполняются без раннего выхода, чтобы вызывающая сторона
// получила полный список нарушений за один проход:
//  1. название не пустое
//  2. лодка указана
//  3. остановок не меньше двух
//  4. отрезков не меньше одного
//  5. внутри отрезка отправление строго раньше прибытия
//  6. каждый следующий отрезок отправляется строго позже прибытия предыдущего
//
// Валидация чисто структурная: состояние не меняется, хранилище не трогается.
// Непрошедшее валидацию расписание не должно попадать ни в проверку
// конфликтов, ни в репозиторий
func validateSchedule(req *Request) validationResult {
	var errs []string

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "schedule name is required")
	}

	if req.BoatID <= 0 {
		errs = append(errs, "boat is required")
	}

	if len(req.Stops) < 2 {
		errs = append(errs, fmt.Sprintf("at least 2 route stops are required, got %d", len(req.Stops)))
	}

	if len(req.Segments) < 1 {
		errs = append(errs, fmt.Sprintf("at least 1 segment is required, got %d", len(req.Segments)))
	}

	for i, seg := range req.Segments {
		if seg.DepartureTime.Validate() != nil || seg.ArrivalTime.Validate() != nil {
			errs = append(errs, fmt.Sprintf("segment %d: departure and arrival times must be in HH:MM format", i+1))
			continue
		}
		if !seg.DepartureTime.IsBefore(seg.ArrivalTime) {
			errs = append(errs, fmt.Sprintf("segment %d: departure time %s must be before arrival time %s",
				i+1, seg.DepartureTime, seg.ArrivalTime))
		}
	}

	// Порядок следования отрезков: следующий не может отправиться до того,
	// как закончился предыдущий (времена суток в рамках одного дня рейса)
	for i := 0; i+1 < len(req.Segments); i++ {
		cur, next := req.Segments[i], req.Segments[i+1]
		if cur.ArrivalTime.Validate() != nil || next.DepartureTime.Validate() != nil {
			continue // формат уже зарепорчен выше
		}
		if !next.DepartureTime.IsAfter(cur.ArrivalTime) {
			errs = append(errs, fmt.Sprintf("segments %d and %d: segment %d departs at %s before segment %d arrives at %s",
				i+1, i+2, i+2, next.DepartureTime, i+1, cur.ArrivalTime))
		}
	}

	return validationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
