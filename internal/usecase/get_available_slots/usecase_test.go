package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBot/internal/config"
	"github.com/m04kA/SMC-SalonBot/pkg/types"
)

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(t *testing.T, now time.Time) *UseCase {
	t.Helper()

	uc, err := NewUseCase(config.BookingConfig{
		Timezone:        "Europe/Moscow",
		OpenHour:        9,
		CloseHour:       24,
		SlotStepMinutes: 30,
		PageSize:        9,
		LookaheadDays:   3,
	}, nopLogger{})
	require.NoError(t, err)

	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func TestExecute_FutureDateFirstPage(t *testing.T) {
	loc := mustLocation(t, "Europe/Moscow")
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, loc)
	uc := newTestUseCase(t, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ChatID: 100,
		Date:   time.Date(2025, 10, 16, 0, 0, 0, 0, loc),
		Page:   0,
	})
	require.NoError(t, err)

	assert.Equal(t, 30, resp.TotalSlots)
	require.Len(t, resp.Slots, 9)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("13:00"), resp.Slots[8].StartTime)
	assert.False(t, resp.HasPrev)
	assert.True(t, resp.HasNext)
}

func TestExecute_LastPage(t *testing.T) {
	loc := mustLocation(t, "Europe/Moscow")
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, loc)
	uc := newTestUseCase(t, now)

	// 30 слотов, страницы по 9: последняя страница 3 содержит 3 слота
	resp, err := uc.Execute(context.Background(), &Request{
		ChatID: 100,
		Date:   time.Date(2025, 10, 16, 0, 0, 0, 0, loc),
		Page:   3,
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	assert.Equal(t, types.TimeString("22:30"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("23:30"), resp.Slots[2].StartTime)
	assert.True(t, resp.HasPrev)
	assert.False(t, resp.HasNext)
}

func TestExecute_TodayFiltersPastSlots(t *testing.T) {
	loc := mustLocation(t, "Europe/Moscow")
	now := time.Date(2025, 10, 15, 21, 40, 0, 0, loc)
	uc := newTestUseCase(t, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ChatID: 100,
		Date:   time.Date(2025, 10, 15, 0, 0, 0, 0, loc),
		Page:   0,
	})
	require.NoError(t, err)

	// 21:40 округляется вниз до 21:30: остаются 21:30..23:30
	assert.Equal(t, 5, resp.TotalSlots)
	require.Len(t, resp.Slots, 5)
	assert.Equal(t, types.TimeString("21:30"), resp.Slots[0].StartTime)
	assert.False(t, resp.HasNext)
}

func TestExecute_ValidationErrors(t *testing.T) {
	loc := mustLocation(t, "Europe/Moscow")
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, loc)
	uc := newTestUseCase(t, now)

	_, err := uc.Execute(context.Background(), &Request{ChatID: 100, Page: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ChatID: 100,
		Date:   time.Date(2025, 10, 16, 0, 0, 0, 0, loc),
		Page:   -1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
