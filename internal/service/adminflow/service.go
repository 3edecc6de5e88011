package adminflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonBot/internal/bot/callbacks"
	"github.com/m04kA/SMC-SalonBot/internal/bot/render"
	"github.com/m04kA/SMC-SalonBot/internal/domain"
	registryRepo "github.com/m04kA/SMC-SalonBot/internal/infra/storage/registry"
	"github.com/m04kA/SMC-SalonBot/internal/integrations/telegram"
	resolveBooking "github.com/m04kA/SMC-SalonBot/internal/usecase/resolve_booking"
)

// Service машина состояний админского флоу рассмотрения заявки:
// accept — терминальный переход, reject переводит интеракцию в ожидание
// причины отклонения (свободный текст или /skip).
// Гонку accept/reject по одному id разрешает атомарный Remove реестра:
// проигравший получает "not found" и не шлёт повторных уведомлений.
type Service struct {
	registry  Registry
	resolveUC ResolveUseCase
	pending   Pending
	messenger Messenger
	logger    Logger
}

// NewService создает новый экземпляр админского флоу
func NewService(
	registry Registry,
	resolveUC ResolveUseCase,
	pending Pending,
	messenger Messenger,
	logger Logger,
) *Service {
	return &Service{
		registry:  registry,
		resolveUC: resolveUC,
		pending:   pending,
		messenger: messenger,
		logger:    logger,
	}
}

// HandleDecision обрабатывает клик accept/reject на карточке заявки.
// ref — админское сообщение с карточкой, которое редактируется по итогу
func (s *Service) HandleDecision(ctx context.Context, ref telegram.MessageRef, action callbacks.Action) error {
	switch act := action.(type) {
	case callbacks.Accept:
		return s.handleAccept(ctx, ref, act.BookingID)
	case callbacks.Reject:
		return s.handleReject(ctx, ref, act.BookingID)
	default:
		s.logger.Debug("AdminFlow: ignoring %T in chat=%d", action, ref.ChatID)
		return nil
	}
}

func (s *Service) handleAccept(ctx context.Context, ref telegram.MessageRef, bookingID int64) error {
	record, err := s.resolveUC.Accept(ctx, bookingID)
	if err != nil {
		if errors.Is(err, resolveBooking.ErrBookingNotFound) {
			// Заявка уже разрешена другим действием
			return s.edit(ref, render.StaleRequestText(), nil)
		}
		if record == nil {
			return fmt.Errorf("%w: accept booking id=%d: %v", ErrInternal, bookingID, err)
		}
		// Уведомление пользователю не ушло, но разрешение уже состоялось:
		// карточку всё равно финализируем
		s.logger.Warn("AdminFlow: booking id=%d accepted, user notify failed: %v", bookingID, err)
	}

	s.logger.Info("AdminFlow: booking id=%d accepted by chat=%d", bookingID, ref.ChatID)
	return s.edit(ref, render.AdminAcceptedText(record), nil)
}

func (s *Service) handleReject(ctx context.Context, ref telegram.MessageRef, bookingID int64) error {
	// Запись НЕ удаляется: до получения причины заявка остаётся в реестре
	record, err := s.registry.Get(bookingID)
	if err != nil {
		if errors.Is(err, registryRepo.ErrBookingNotFound) {
			return s.edit(ref, render.StaleRequestText(), nil)
		}
		return fmt.Errorf("%w: reject booking id=%d: %v", ErrInternal, bookingID, err)
	}

	s.pending.Set(ref.ChatID, bookingID)
	s.logger.Info("AdminFlow: booking id=%d pending rejection reason from chat=%d", bookingID, ref.ChatID)

	return s.edit(ref, render.AdminRejectPromptText(record), nil)
}

// HandleText обрабатывает текст из админского чата: причину отклонения
// или /skip. Текст без ожидающей заявки (например, после рестарта процесса)
// получает ответ "больше не доступен"
func (s *Service) HandleText(ctx context.Context, adminChatID int64, text string) error {
	bookingID, ok := s.pending.Pop(adminChatID)
	if !ok {
		s.logger.Warn("AdminFlow: text from chat=%d with no pending rejection", adminChatID)
		return s.send(adminChatID, render.NoLongerAvailableText(), nil)
	}

	var reason *string
	if strings.TrimSpace(text) != domain.SkipCommand {
		if runes := []rune(text); len(runes) > domain.MaxRejectReasonLength {
			text = string(runes[:domain.MaxRejectReasonLength])
		}
		reason = &text
	}

	record, err := s.resolveUC.Reject(ctx, bookingID, reason)
	if err != nil {
		if errors.Is(err, resolveBooking.ErrBookingNotFound) {
			return s.send(adminChatID, render.NoLongerAvailableText(), nil)
		}
		if record == nil {
			return fmt.Errorf("%w: reject booking id=%d: %v", ErrInternal, bookingID, err)
		}
		s.logger.Warn("AdminFlow: booking id=%d rejected, user notify failed: %v", bookingID, err)
	}

	s.logger.Info("AdminFlow: booking id=%d rejected by chat=%d", bookingID, adminChatID)

	// Подтверждение администратору уходит новым сообщением
	return s.send(adminChatID, render.AdminRejectedText(record, reason), nil)
}

func (s *Service) edit(ref telegram.MessageRef, text string, keyboard telegram.InlineKeyboard) error {
	if err := s.messenger.EditMessage(ref, text, keyboard); err != nil {
		s.logger.Error("AdminFlow: failed to edit message chat=%d: %v", ref.ChatID, err)
		return fmt.Errorf("%w: chat=%d: %v", ErrSendFailed, ref.ChatID, err)
	}
	return nil
}

func (s *Service) send(chatID int64, text string, keyboard telegram.InlineKeyboard) error {
	if _, err := s.messenger.SendMessage(chatID, text, keyboard); err != nil {
		s.logger.Error("AdminFlow: failed to send message to chat=%d: %v", chatID, err)
		return fmt.Errorf("%w: chat=%d: %v", ErrSendFailed, chatID, err)
	}
	return nil
}
