package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBot/internal/domain"
	resolveBooking "github.com/m04kA/SMC-SalonBot/internal/usecase/resolve_booking"
	"github.com/m04kA/SMC-SalonBot/pkg/types"
)

// Обе реализации журнала взаимозаменяемы для resolve usecase
var (
	_ resolveBooking.Journal = (*NoopJournal)(nil)
	_ resolveBooking.Journal = (*Repository)(nil)
)

func TestNoopJournal_Append(t *testing.T) {
	journal := NewNoopJournal()

	resolution := &domain.Resolution{
		Record: domain.BookingRecord{
			ID:         1,
			UserChatID: 100,
			UserName:   "Анна",
			Service:    domain.ServiceWomenHaircut,
			Slot: domain.NewSlot(
				time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC),
				types.TimeString("10:00"),
			),
		},
		Status:     domain.StatusAccepted,
		ResolvedAt: time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC),
	}

	assert.NoError(t, journal.Append(context.Background(), resolution))
	assert.NoError(t, journal.Append(context.Background(), resolution))
}
