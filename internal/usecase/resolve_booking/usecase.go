package resolve_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBot/internal/bot/render"
	"github.com/m04kA/SMC-SalonBot/internal/domain"
	registryRepo "github.com/m04kA/SMC-SalonBot/internal/infra/storage/registry"
)

// UseCase use case разрешения заявки администратором.
// Порядок фиксированный: сначала Remove из реестра (единственный признак
// "заявка разрешена"), затем журнал и уведомления. Медленная или упавшая
// отправка не держит блокировку реестра и не откатывает разрешение.
type UseCase struct {
	registry     Registry
	messenger    Messenger
	journal      Journal
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	registry Registry,
	messenger Messenger,
	journal Journal,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		registry:     registry,
		messenger:    messenger,
		journal:      journal,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Accept принимает заявку: удаляет её из реестра и уведомляет пользователя.
// При ErrUserNotifyFailed запись всё равно считается принятой, и запись
// возвращается вместе с ошибкой
func (uc *UseCase) Accept(ctx context.Context, bookingID int64) (*domain.BookingRecord, error) {
	record, err := uc.remove(bookingID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ResolveBooking: booking id=%d accepted", bookingID)
	uc.metrics.IncBookingAccepted()
	uc.appendJournal(ctx, record, domain.StatusAccepted, nil)

	text := render.UserAcceptedText(record)
	if _, err := uc.messenger.SendMessage(record.UserChatID, text, render.NewBookingKeyboard()); err != nil {
		uc.logger.Error("ResolveBooking: failed to notify user chat=%d about accepted booking id=%d: %v",
			record.UserChatID, bookingID, err)
		return record, fmt.Errorf("%w: booking id=%d: %v", ErrUserNotifyFailed, bookingID, err)
	}

	return record, nil
}

// Reject отклоняет заявку с опциональной причиной (nil = без комментария)
// и уведомляет пользователя. Семантика ошибок как у Accept
func (uc *UseCase) Reject(ctx context.Context, bookingID int64, reason *string) (*domain.BookingRecord, error) {
	record, err := uc.remove(bookingID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ResolveBooking: booking id=%d rejected", bookingID)
	uc.metrics.IncBookingRejected()
	uc.appendJournal(ctx, record, domain.StatusRejected, reason)

	text := render.UserRejectedText(record, reason)
	if _, err := uc.messenger.SendMessage(record.UserChatID, text, render.NewBookingKeyboard()); err != nil {
		uc.logger.Error("ResolveBooking: failed to notify user chat=%d about rejected booking id=%d: %v",
			record.UserChatID, bookingID, err)
		return record, fmt.Errorf("%w: booking id=%d: %v", ErrUserNotifyFailed, bookingID, err)
	}

	return record, nil
}

func (uc *UseCase) remove(bookingID int64) (*domain.BookingRecord, error) {
	record, err := uc.registry.Remove(bookingID)
	if err != nil {
		if errors.Is(err, registryRepo.ErrBookingNotFound) {
			uc.logger.Warn("ResolveBooking: booking id=%d not found or already resolved", bookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ResolveBooking: registry error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: registry error: %v", ErrInternal, err)
	}
	return record, nil
}

// appendJournal пишет итог в журнал истории. Журнал вспомогательный:
// ошибка записи логируется и не влияет на разрешение заявки
func (uc *UseCase) appendJournal(ctx context.Context, record *domain.BookingRecord, status domain.BookingStatus, reason *string) {
	resolution := &domain.Resolution{
		Record:     *record,
		Status:     status,
		Reason:     reason,
		ResolvedAt: uc.timeProvider.Now(),
	}
	if err := uc.journal.Append(ctx, resolution); err != nil {
		uc.logger.Warn("ResolveBooking: failed to journal booking id=%d: %v", record.ID, err)
	}
}
