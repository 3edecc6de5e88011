// Package bot принимает обновления Telegram, разбирает их в типизированные
// действия и маршрутизирует в пользовательский либо админский флоу.
package bot

import (
	"context"
	"errors"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/m04kA/SMC-SalonBot/internal/bot/callbacks"
	"github.com/m04kA/SMC-SalonBot/internal/bot/render"
	"github.com/m04kA/SMC-SalonBot/internal/integrations/telegram"
	"github.com/m04kA/SMC-SalonBot/internal/service/adminflow"
	"github.com/m04kA/SMC-SalonBot/internal/service/userflow"
	createBooking "github.com/m04kA/SMC-SalonBot/internal/usecase/create_booking"
	resolveBooking "github.com/m04kA/SMC-SalonBot/internal/usecase/resolve_booking"
)

// Bot диспетчер обновлений Telegram
type Bot struct {
	client      Messenger
	userFlow    UserFlow
	adminFlow   AdminFlow
	adminChatID int64
	location    *time.Location
	pollTimeout int
	metrics     Metrics
	logger      Logger
}

// New создает диспетчер бота
func New(
	client Messenger,
	userFlow UserFlow,
	adminFlow AdminFlow,
	adminChatID int64,
	location *time.Location,
	pollTimeout int,
	metrics Metrics,
	logger Logger,
) *Bot {
	return &Bot{
		client:      client,
		userFlow:    userFlow,
		adminFlow:   adminFlow,
		adminChatID: adminChatID,
		location:    location,
		pollTimeout: pollTimeout,
		metrics:     metrics,
		logger:      logger,
	}
}

// Run запускает цикл обработки обновлений и блокируется до отмены контекста
func (b *Bot) Run(ctx context.Context) {
	updates := b.client.Updates(b.pollTimeout)
	b.logger.Info("Bot: update loop started")

	for {
		select {
		case <-ctx.Done():
			b.client.StopPolling()
			b.logger.Info("Bot: update loop stopped")
			return
		case update, ok := <-updates:
			if !ok {
				b.logger.Warn("Bot: updates channel closed")
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		b.metrics.IncUpdate("command")
		switch msg.Command() {
		case "start":
			if err := b.userFlow.Start(ctx, chatID); err != nil {
				b.report("start command", err)
			}
		case "getid":
			if _, err := b.client.SendMessage(chatID, render.ChatIDText(chatID), nil); err != nil {
				b.report("getid command", err)
			}
		case "skip":
			// /skip имеет смысл только как ответ на запрос причины отклонения
			if chatID == b.adminChatID {
				if err := b.adminFlow.HandleText(ctx, chatID, msg.Text); err != nil {
					b.report("admin skip", err)
				}
			}
		default:
			b.logger.Debug("Bot: ignoring command /%s from chat=%d", msg.Command(), chatID)
		}
		return
	}

	// Свободный текст обрабатывается только в админском чате:
	// это причина отклонения заявки
	if chatID == b.adminChatID {
		b.metrics.IncUpdate("admin_text")
		if err := b.adminFlow.HandleText(ctx, chatID, msg.Text); err != nil {
			b.report("admin text", err)
		}
		return
	}

	b.logger.Debug("Bot: ignoring text from chat=%d", chatID)
}

func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	b.metrics.IncUpdate("callback")

	// Сначала убираем спиннер на кнопке
	if err := b.client.AnswerCallback(query.ID); err != nil {
		b.logger.Warn("Bot: failed to answer callback %s: %v", query.ID, err)
	}

	if query.Message == nil {
		b.logger.Debug("Bot: callback %s without message, ignoring", query.ID)
		return
	}

	action, err := callbacks.Parse(query.Data, b.location)
	if err != nil {
		// Битую кнопку не отличить от устаревшего UI: молчаливый no-op
		b.metrics.IncMalformedCallback()
		b.logger.Debug("Bot: malformed callback data %q: %v", query.Data, err)
		return
	}

	ref := telegram.MessageRef{
		ChatID:    query.Message.Chat.ID,
		MessageID: query.Message.MessageID,
	}

	switch action.(type) {
	case callbacks.Accept, callbacks.Reject:
		if err := b.adminFlow.HandleDecision(ctx, ref, action); err != nil {
			b.report("admin decision", err)
		}
	case callbacks.NewBooking:
		if err := b.userFlow.Start(ctx, ref.ChatID); err != nil {
			b.report("new booking", err)
		}
	default:
		conv := userflow.Conversation{
			ChatID:   ref.ChatID,
			Message:  ref,
			UserName: displayName(query.From),
			Username: usernameOf(query.From),
		}
		if err := b.userFlow.HandleAction(ctx, conv, action); err != nil {
			b.report("user action", err)
		}
	}
}

// report логирует ошибку обработки и учитывает неудачные отправки
func (b *Bot) report(op string, err error) {
	if isSendError(err) {
		b.metrics.IncSendError()
	}
	b.logger.Error("Bot: %s failed: %v", op, err)
}

func isSendError(err error) bool {
	return errors.Is(err, telegram.ErrSendFailed) ||
		errors.Is(err, telegram.ErrEditFailed) ||
		errors.Is(err, userflow.ErrSendFailed) ||
		errors.Is(err, adminflow.ErrSendFailed) ||
		errors.Is(err, createBooking.ErrAdminNotifyFailed) ||
		errors.Is(err, createBooking.ErrUserNotifyFailed) ||
		errors.Is(err, resolveBooking.ErrUserNotifyFailed)
}

func displayName(user *tgbotapi.User) string {
	if user == nil {
		return ""
	}
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name == "" {
		name = user.UserName
	}
	return name
}

func usernameOf(user *tgbotapi.User) *string {
	if user == nil || user.UserName == "" {
		return nil
	}
	username := user.UserName
	return &username
}
