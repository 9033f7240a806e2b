package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате строки времени
var ErrInvalidTimeString = errors.New("types: invalid time string format")

// timeStringLayout формат времени суток HH:MM
const timeStringLayout = "15:04"

// TimeString время суток в формате "HH:MM" (без даты и часового пояса)
// Используется для времени отправления/прибытия в шаблонах рейсов:
// шаблон описывает времена в пределах одного дня, конкретная дата
// накладывается при материализации экземпляра расписания
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что строка соответствует формату HH:MM
// time.Parse прощает пропущенный ведущий ноль ("9:30"), поэтому
// дополнительно требуем каноническую ширину в 5 символов
func (t TimeString) Validate() error {
	if len(t) != len(timeStringLayout) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if _, err := time.Parse(timeStringLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут с начала дня
// Для невалидного значения возвращает 0 - перед арифметикой значение
// должно быть проверено через Validate
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// AddMinutes возвращает новое время, сдвинутое на minutes минут вперед
// Возвращает ошибку при выходе за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	total := t.Minutes() + minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes is out of day range", ErrInvalidTimeString, string(t), minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// MinutesBetween возвращает разницу other - t в минутах (может быть отрицательной)
func (t TimeString) MinutesBetween(other TimeString) int {
	return other.Minutes() - t.Minutes()
}

// OnDate накладывает время суток на календарную дату, возвращая абсолютный timestamp
func (t TimeString) OnDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Minutes()/60, t.Minutes()%60, 0, 0, date.Location())
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Postgres возвращает колонки типа time как "HH:MM:SS" - секунды отбрасываем
func (t *TimeString) Scan(src interface{}) error {
	if src == nil {
		*t = ""
		return nil
	}

	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}

	if len(s) > 5 {
		s = s[:5]
	}

	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}
