package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonBot/pkg/types"
)

// generateTimeSlots генерирует список временных слотов на день.
// Слоты идут с фиксированным шагом stepMinutes в интервале
// [openHour:00, closeHour:00). Для сегодняшней даты отфильтровываются
// слоты строго раньше текущего времени, округлённого вниз до шага:
// текущая получасовая граница ещё доступна для записи.
// Детерминированность обеспечивается явным параметром now.
func generateTimeSlots(
	openHour int,
	closeHour int,
	stepMinutes int,
	requestDate time.Time,
	now time.Time,
) ([]types.TimeString, error) {
	// Дата в прошлом — слотов нет
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	closeTime, err := types.NewTimeStringFromMinutes(closeHour * 60)
	if err != nil {
		return nil, err
	}

	// Шаг 1: все слоты от открытия до закрытия
	allSlots := make([]types.TimeString, 0)
	currentSlot, err := types.NewTimeStringFromMinutes(openHour * 60)
	if err != nil {
		return nil, err
	}

	for currentSlot.IsBefore(closeTime) {
		allSlots = append(allSlots, currentSlot)
		currentSlot, err = currentSlot.AddMinutes(stepMinutes)
		if err != nil {
			return nil, err
		}
	}

	// Шаг 2: будущая дата — возвращаем все слоты без фильтрации
	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	// Шаг 3: сегодня — оставляем слоты не раньше now, округлённого вниз до шага
	minAllowedTime, err := types.NewTimeString(now).FloorTo(stepMinutes)
	if err != nil {
		return nil, err
	}

	availableSlots := make([]types.TimeString, 0)
	for _, slot := range allSlots {
		if !slot.IsBefore(minAllowedTime) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
