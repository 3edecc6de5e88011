package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBot/pkg/types"
)

// Slot бронируемая пара (дата, время начала) с шагом в 30 минут
type Slot struct {
	Date      time.Time        // дата без времени, в таймзоне сервиса
	StartTime types.TimeString // время начала, "HH:MM"
}

// NewSlot создает слот из даты и времени начала
func NewSlot(date time.Time, start types.TimeString) Slot {
	return Slot{Date: date, StartTime: start}
}

// ParseSlot парсит слот из строк "YYYY-MM-DD" и "HH:MM"
func ParseSlot(dateStr, timeStr string, loc *time.Location) (Slot, error) {
	date, err := time.ParseInLocation(DateFormat, dateStr, loc)
	if err != nil {
		return Slot{}, fmt.Errorf("invalid slot date %q: %w", dateStr, err)
	}
	start, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return Slot{}, fmt.Errorf("invalid slot time %q: %w", timeStr, err)
	}
	return Slot{Date: date, StartTime: start}, nil
}

// DateString возвращает дату слота в формате "YYYY-MM-DD"
func (s Slot) DateString() string {
	return s.Date.Format(DateFormat)
}

// String возвращает представление "YYYY-MM-DD HH:MM" для показа пользователю
func (s Slot) String() string {
	return s.DateString() + " " + s.StartTime.String()
}

// IsZero возвращает true для пустого слота
func (s Slot) IsZero() bool {
	return s.Date.IsZero() && s.StartTime.IsZero()
}
