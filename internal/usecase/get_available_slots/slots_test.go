package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBot/pkg/types"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestGenerateTimeSlots_FutureDate(t *testing.T) {
	loc := mustLocation(t, "Europe/Moscow")
	now := time.Date(2025, 10, 15, 14, 12, 0, 0, loc)
	requestDate := time.Date(2025, 10, 16, 0, 0, 0, 0, loc)

	slots, err := generateTimeSlots(9, 24, 30, requestDate, now)
	require.NoError(t, err)

	// Полная сетка: [09:00, 24:00) с шагом 30 минут = 30 слотов
	require.Len(t, slots, 30)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("09:30"), slots[1])
	assert.Equal(t, types.TimeString("23:30"), slots[len(slots)-1])
}

func TestGenerateTimeSlots_Today(t *testing.T) {
	loc := mustLocation(t, "Europe/Moscow")
	// 14:12 округляется вниз до 14:00 — текущая получасовая граница ещё доступна
	now := time.Date(2025, 10, 15, 14, 12, 0, 0, loc)
	requestDate := time.Date(2025, 10, 15, 0, 0, 0, 0, loc)

	slots, err := generateTimeSlots(9, 24, 30, requestDate, now)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("14:00"), slots[0])
	assert.Equal(t, types.TimeString("23:30"), slots[len(slots)-1])

	for _, slot := range slots {
		assert.False(t, slot.IsBefore("14:00"), "slot %s is before 14:00", slot)
	}
}

func TestGenerateTimeSlots_TodayOnBoundary(t *testing.T) {
	loc := mustLocation(t, "Europe/Moscow")
	now := time.Date(2025, 10, 15, 14, 30, 0, 0, loc)
	requestDate := time.Date(2025, 10, 15, 0, 0, 0, 0, loc)

	slots, err := generateTimeSlots(9, 24, 30, requestDate, now)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("14:30"), slots[0])
}

func TestGenerateTimeSlots_TodayFinalBoundary(t *testing.T) {
	loc := mustLocation(t, "Europe/Moscow")
	// 23:45 округляется вниз до 23:30 — последний слот дня ещё доступен
	now := time.Date(2025, 10, 15, 23, 45, 0, 0, loc)
	requestDate := time.Date(2025, 10, 15, 0, 0, 0, 0, loc)

	slots, err := generateTimeSlots(9, 24, 30, requestDate, now)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"23:30"}, slots)
}

func TestGenerateTimeSlots_TodayAfterClose(t *testing.T) {
	loc := mustLocation(t, "Europe/Moscow")
	now := time.Date(2025, 10, 15, 23, 45, 0, 0, loc)
	requestDate := time.Date(2025, 10, 15, 0, 0, 0, 0, loc)

	// Закрытие в 20:00: последняя граница 19:30 давно прошла
	slots, err := generateTimeSlots(9, 20, 30, requestDate, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_PastDate(t *testing.T) {
	loc := mustLocation(t, "Europe/Moscow")
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, loc)
	requestDate := time.Date(2025, 10, 14, 0, 0, 0, 0, loc)

	slots, err := generateTimeSlots(9, 24, 30, requestDate, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_ShortDay(t *testing.T) {
	loc := mustLocation(t, "Europe/Moscow")
	now := time.Date(2025, 10, 15, 8, 0, 0, 0, loc)
	requestDate := time.Date(2025, 10, 16, 0, 0, 0, 0, loc)

	slots, err := generateTimeSlots(10, 12, 60, requestDate, now)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "11:00"}, slots)
}
