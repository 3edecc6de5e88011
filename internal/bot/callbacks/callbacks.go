// Package callbacks кодирует и разбирает callback data инлайн-кнопок.
// Точный wire-формат — внутренний контракт между клавиатурами и
// обработчиками; наружу уходят только типизированные действия.
package callbacks

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBot/internal/domain"
)

// Префиксы callback data
const (
	prefixCategory = "cat_"
	prefixService  = "svc_"
	prefixDate     = "date_"
	prefixSlot     = "slot_"
	prefixAccept   = "accept_"
	prefixReject   = "reject_"

	dataPageNext   = "page_next"
	dataPagePrev   = "page_prev"
	dataNewBooking = "new_booking"
)

// Action типизированное действие, разобранное из callback data.
// Закрытое объединение: обработчики матчатся по вариантам и не
// разбирают строки повторно.
type Action interface {
	action() string
}

// PickCategory выбор категории услуг
type PickCategory struct {
	Category domain.Category
}

// PickService выбор услуги
type PickService struct {
	Service domain.ServiceCode
}

// PickDate выбор даты записи
type PickDate struct {
	Date time.Time
}

// Paginate листание страниц слотов
type Paginate struct {
	Next bool // true = вперёд, false = назад
}

// PickSlot выбор конкретного слота
type PickSlot struct {
	Slot domain.Slot
}

// Accept решение администратора принять заявку
type Accept struct {
	BookingID int64
}

// Reject решение администратора отклонить заявку
type Reject struct {
	BookingID int64
}

// NewBooking запрос пользователя начать новую запись
type NewBooking struct{}

func (PickCategory) action() string { return "pick_category" }
func (PickService) action() string  { return "pick_service" }
func (PickDate) action() string     { return "pick_date" }
func (Paginate) action() string     { return "paginate" }
func (PickSlot) action() string     { return "pick_slot" }
func (Accept) action() string       { return "accept" }
func (Reject) action() string       { return "reject" }
func (NewBooking) action() string   { return "new_booking" }

// CategoryData кодирует выбор категории
func CategoryData(c domain.Category) string {
	return prefixCategory + string(c)
}

// ServiceData кодирует выбор услуги
func ServiceData(s domain.ServiceCode) string {
	return prefixService + string(s)
}

// DateData кодирует выбор даты
func DateData(date time.Time) string {
	return prefixDate + date.Format(domain.DateFormat)
}

// SlotData кодирует выбор слота
func SlotData(slot domain.Slot) string {
	return prefixSlot + slot.DateString() + "_" + slot.StartTime.String()
}

// PageNextData кодирует листание вперёд
func PageNextData() string { return dataPageNext }

// PagePrevData кодирует листание назад
func PagePrevData() string { return dataPagePrev }

// AcceptData кодирует решение принять заявку
func AcceptData(bookingID int64) string {
	return prefixAccept + strconv.FormatInt(bookingID, 10)
}

// RejectData кодирует решение отклонить заявку
func RejectData(bookingID int64) string {
	return prefixReject + strconv.FormatInt(bookingID, 10)
}

// NewBookingData кодирует запрос новой записи
func NewBookingData() string { return dataNewBooking }

// Parse разбирает callback data в типизированное действие.
// Валидация происходит один раз, на границе транспорта: неизвестный
// или битый формат возвращает ErrUnknownAction.
func Parse(data string, loc *time.Location) (Action, error) {
	switch data {
	case dataPageNext:
		return Paginate{Next: true}, nil
	case dataPagePrev:
		return Paginate{Next: false}, nil
	case dataNewBooking:
		return NewBooking{}, nil
	}

	switch {
	case strings.HasPrefix(data, prefixCategory):
		category := domain.Category(strings.TrimPrefix(data, prefixCategory))
		if !category.IsValid() {
			return nil, fmt.Errorf("%w: unknown category in %q", ErrUnknownAction, data)
		}
		return PickCategory{Category: category}, nil

	case strings.HasPrefix(data, prefixService):
		service := domain.ServiceCode(strings.TrimPrefix(data, prefixService))
		if !service.IsValid() {
			return nil, fmt.Errorf("%w: unknown service in %q", ErrUnknownAction, data)
		}
		return PickService{Service: service}, nil

	case strings.HasPrefix(data, prefixDate):
		raw := strings.TrimPrefix(data, prefixDate)
		date, err := time.ParseInLocation(domain.DateFormat, raw, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date in %q", ErrUnknownAction, data)
		}
		return PickDate{Date: date}, nil

	case strings.HasPrefix(data, prefixSlot):
		raw := strings.TrimPrefix(data, prefixSlot)
		parts := strings.SplitN(raw, "_", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: invalid slot in %q", ErrUnknownAction, data)
		}
		slot, err := domain.ParseSlot(parts[0], parts[1], loc)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid slot in %q", ErrUnknownAction, data)
		}
		return PickSlot{Slot: slot}, nil

	case strings.HasPrefix(data, prefixAccept):
		id, err := parseBookingID(strings.TrimPrefix(data, prefixAccept))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid booking id in %q", ErrUnknownAction, data)
		}
		return Accept{BookingID: id}, nil

	case strings.HasPrefix(data, prefixReject):
		id, err := parseBookingID(strings.TrimPrefix(data, prefixReject))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid booking id in %q", ErrUnknownAction, data)
		}
		return Reject{BookingID: id}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, data)
}

func parseBookingID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("booking id must be positive, got %d", id)
	}
	return id, nil
}
