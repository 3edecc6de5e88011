package adminflow

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBot/internal/bot/callbacks"
	"github.com/m04kA/SMC-SalonBot/internal/domain"
	"github.com/m04kA/SMC-SalonBot/internal/infra/storage/registry"
	"github.com/m04kA/SMC-SalonBot/internal/infra/storage/sessions"
	"github.com/m04kA/SMC-SalonBot/internal/integrations/telegram"
	resolveBooking "github.com/m04kA/SMC-SalonBot/internal/usecase/resolve_booking"
	"github.com/m04kA/SMC-SalonBot/pkg/ptr"
	"github.com/m04kA/SMC-SalonBot/pkg/types"
)

const (
	adminChatID int64 = -400123
	userChatID  int64 = 100
)

type sentMessage struct {
	chatID   int64
	text     string
	keyboard telegram.InlineKeyboard
}

type editedMessage struct {
	ref      telegram.MessageRef
	text     string
	keyboard telegram.InlineKeyboard
}

type fakeMessenger struct {
	sent   []sentMessage
	edited []editedMessage
}

func (f *fakeMessenger) SendMessage(chatID int64, text string, keyboard telegram.InlineKeyboard) (telegram.MessageRef, error) {
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text, keyboard: keyboard})
	return telegram.MessageRef{ChatID: chatID, MessageID: len(f.sent)}, nil
}

func (f *fakeMessenger) EditMessage(ref telegram.MessageRef, text string, keyboard telegram.InlineKeyboard) error {
	f.edited = append(f.edited, editedMessage{ref: ref, text: text, keyboard: keyboard})
	return nil
}

type fakeJournal struct{}

func (fakeJournal) Append(ctx context.Context, resolution *domain.Resolution) error { return nil }

type fakeMetrics struct{}

func (fakeMetrics) IncBookingAccepted() {}
func (fakeMetrics) IncBookingRejected() {}

type nopLogger struct{}

func (nopLogger) Debug(format string, v ...interface{}) {}
func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	service   *Service
	registry  *registry.Repository
	pending   *sessions.PendingRejections
	messenger *fakeMessenger
	cardRef   telegram.MessageRef
}

// newFixture собирает флоу на реальном реестре и реальном resolve usecase,
// подменяя только транспорт
func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := registry.NewRepository()
	messenger := &fakeMessenger{}
	pending := sessions.NewPendingRejections()

	resolveUC := resolveBooking.NewUseCase(repo, messenger, fakeJournal{}, fakeMetrics{}, nopLogger{})
	service := NewService(repo, resolveUC, pending, messenger, nopLogger{})

	return &fixture{
		service:   service,
		registry:  repo,
		pending:   pending,
		messenger: messenger,
		cardRef:   telegram.MessageRef{ChatID: adminChatID, MessageID: 55},
	}
}

func (f *fixture) seedBooking() int64 {
	return f.registry.Insert(domain.BookingRecord{
		UserChatID: userChatID,
		UserName:   "Анна",
		Username:   ptr.Ptr("anna_k"),
		Service:    domain.ServiceWomenHaircut,
		Slot: domain.NewSlot(
			time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC),
			types.TimeString("10:00"),
		),
		CreatedAt: time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC),
	})
}

func TestHandleDecision_Accept(t *testing.T) {
	f := newFixture(t)
	id := f.seedBooking()

	err := f.service.HandleDecision(context.Background(), f.cardRef, callbacks.Accept{BookingID: id})
	require.NoError(t, err)

	// Заявка разрешена, пользователь уведомлён, карточка финализирована
	assert.Equal(t, 0, f.registry.Len())
	require.Len(t, f.messenger.sent, 1)
	assert.Equal(t, userChatID, f.messenger.sent[0].chatID)
	assert.Contains(t, f.messenger.sent[0].text, "принят")

	require.Len(t, f.messenger.edited, 1)
	assert.Equal(t, f.cardRef, f.messenger.edited[0].ref)
	assert.Contains(t, f.messenger.edited[0].text, "Запрос Принят")
	assert.Nil(t, f.messenger.edited[0].keyboard)
}

func TestHandleDecision_AcceptStale(t *testing.T) {
	f := newFixture(t)

	err := f.service.HandleDecision(context.Background(), f.cardRef, callbacks.Accept{BookingID: 42})
	require.NoError(t, err)

	// Пользователю ничего не уходит, карточка помечается устаревшей
	assert.Empty(t, f.messenger.sent)
	require.Len(t, f.messenger.edited, 1)
	assert.Contains(t, f.messenger.edited[0].text, "не найден или закрыт")
}

func TestHandleDecision_RejectThenReason(t *testing.T) {
	f := newFixture(t)
	id := f.seedBooking()
	ctx := context.Background()

	err := f.service.HandleDecision(ctx, f.cardRef, callbacks.Reject{BookingID: id})
	require.NoError(t, err)

	// До получения причины заявка остаётся в реестре
	assert.Equal(t, 1, f.registry.Len())
	require.Len(t, f.messenger.edited, 1)
	assert.Contains(t, f.messenger.edited[0].text, "причину отклонения")

	err = f.service.HandleText(ctx, adminChatID, "Мастер занят")
	require.NoError(t, err)

	assert.Equal(t, 0, f.registry.Len())

	// Два новых сообщения: уведомление пользователю и подтверждение администратору
	require.Len(t, f.messenger.sent, 2)
	assert.Equal(t, userChatID, f.messenger.sent[0].chatID)
	assert.Contains(t, f.messenger.sent[0].text, "_Reason:_ Мастер занят")
	assert.Equal(t, adminChatID, f.messenger.sent[1].chatID)
	assert.Contains(t, f.messenger.sent[1].text, "Запрос Отклонён")
	assert.Contains(t, f.messenger.sent[1].text, "_Reason:_ Мастер занят")
}

func TestHandleText_SkipRejectsWithoutReason(t *testing.T) {
	f := newFixture(t)
	id := f.seedBooking()
	ctx := context.Background()

	require.NoError(t, f.service.HandleDecision(ctx, f.cardRef, callbacks.Reject{BookingID: id}))
	require.NoError(t, f.service.HandleText(ctx, adminChatID, "/skip"))

	assert.Equal(t, 0, f.registry.Len())
	require.Len(t, f.messenger.sent, 2)
	assert.NotContains(t, f.messenger.sent[0].text, "_Reason:_")
	assert.NotContains(t, f.messenger.sent[1].text, "_Reason:_")
}

func TestHandleText_NoPendingRejection(t *testing.T) {
	f := newFixture(t)

	err := f.service.HandleText(context.Background(), adminChatID, "какой-то текст")
	require.NoError(t, err)

	require.Len(t, f.messenger.sent, 1)
	assert.Equal(t, adminChatID, f.messenger.sent[0].chatID)
	assert.Contains(t, f.messenger.sent[0].text, "больше не доступен")
}

func TestHandleText_ReasonTruncated(t *testing.T) {
	f := newFixture(t)
	id := f.seedBooking()
	ctx := context.Background()

	require.NoError(t, f.service.HandleDecision(ctx, f.cardRef, callbacks.Reject{BookingID: id}))

	long := strings.Repeat("ы", domain.MaxRejectReasonLength+100)
	require.NoError(t, f.service.HandleText(ctx, adminChatID, long))

	require.Len(t, f.messenger.sent, 2)
	want := strings.Repeat("ы", domain.MaxRejectReasonLength)
	assert.Contains(t, f.messenger.sent[0].text, "_Reason:_ "+want)
	assert.NotContains(t, f.messenger.sent[0].text, want+"ы")
}

func TestHandleText_SecondReasonAfterResolve(t *testing.T) {
	f := newFixture(t)
	id := f.seedBooking()
	ctx := context.Background()

	require.NoError(t, f.service.HandleDecision(ctx, f.cardRef, callbacks.Reject{BookingID: id}))

	// Заявку успели принять, пока администратор набирал причину
	_, err := f.service.resolveUC.Accept(ctx, id)
	require.NoError(t, err)
	sentBefore := len(f.messenger.sent)

	require.NoError(t, f.service.HandleText(ctx, adminChatID, "Мастер занят"))

	// Пользователь не получает второго уведомления, администратору — "не доступен"
	require.Len(t, f.messenger.sent, sentBefore+1)
	last := f.messenger.sent[len(f.messenger.sent)-1]
	assert.Equal(t, adminChatID, last.chatID)
	assert.Contains(t, last.text, "больше не доступен")
}
