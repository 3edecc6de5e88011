package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате строки времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// minutesPerDay граница суток в минутах; "24:00" допустимо как верхняя граница интервала
const minutesPerDay = 24 * 60

// TimeString время суток в формате "HH:MM"
// Строковое представление с ведущими нулями сравнимо лексикографически,
// что используется в IsBefore/IsAfter
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString создает TimeString из строки "HH:MM" с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes is out of day range", ErrInvalidTimeString, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат "HH:MM"
// Допустимый диапазон 00:00-23:59, плюс специальное значение 24:00
// для обозначения конца суток
func (t TimeString) Validate() error {
	if _, err := t.Minutes(); err != nil {
		return err
	}
	return nil
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	var hour, minute int
	if len(t) != 5 || t[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if _, err := fmt.Sscanf(string(t), "%2d:%2d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	total := hour*60 + minute
	if total < 0 || total > minutesPerDay {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return total, nil
}

// AddMinutes возвращает время, сдвинутое на указанное количество минут
// Результат не может выходить за границы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(total + minutes)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// FloorTo округляет время вниз до ближайшей границы step минут
func (t TimeString) FloorTo(step int) (TimeString, error) {
	if step <= 0 {
		return "", fmt.Errorf("%w: step must be positive", ErrInvalidTimeString)
	}
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(total - total%step)
}
