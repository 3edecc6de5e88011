package callbacks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBot/internal/domain"
	"github.com/m04kA/SMC-SalonBot/pkg/types"
)

func TestParse_RoundTrip(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	date := time.Date(2025, 10, 16, 0, 0, 0, 0, loc)
	slot := domain.NewSlot(date, types.TimeString("10:30"))

	tests := []struct {
		name string
		data string
		want Action
	}{
		{"category", CategoryData(domain.CategoryWomen), PickCategory{Category: domain.CategoryWomen}},
		{"service", ServiceData(domain.ServiceMenBarber), PickService{Service: domain.ServiceMenBarber}},
		{"date", DateData(date), PickDate{Date: date}},
		{"slot", SlotData(slot), PickSlot{Slot: slot}},
		{"page_next", PageNextData(), Paginate{Next: true}},
		{"page_prev", PagePrevData(), Paginate{Next: false}},
		{"accept", AcceptData(42), Accept{BookingID: 42}},
		{"reject", RejectData(42), Reject{BookingID: 42}},
		{"new_booking", NewBookingData(), NewBooking{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.data, loc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"garbage", "hello world"},
		{"unknown_category", "cat_kids"},
		{"unknown_service", "svc_massage"},
		{"bad_date", "date_16.10.2025"},
		{"slot_without_time", "slot_2025-10-16"},
		{"slot_bad_time", "slot_2025-10-16_25:99"},
		{"accept_not_a_number", "accept_abc"},
		{"accept_zero", "accept_0"},
		{"reject_negative", "reject_-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data, loc)
			assert.ErrorIs(t, err, ErrUnknownAction)
		})
	}
}
