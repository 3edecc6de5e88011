package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client обёртка над Bot API, сводящая транспорт к узкому интерфейсу
// "отправить сообщение / отредактировать сообщение"
type Client struct {
	api *tgbotapi.BotAPI
	log Logger
}

// NewClient создает клиента Telegram и проверяет токен запросом getMe
func NewClient(token string, log Logger) (*Client, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram client: authorization failed: %w", err)
	}

	log.Info("Authorized on Telegram account @%s", api.Self.UserName)

	return &Client{api: api, log: log}, nil
}

// Updates возвращает канал входящих обновлений (long polling)
func (c *Client) Updates(pollTimeout int) tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout
	return c.api.GetUpdatesChan(u)
}

// StopPolling останавливает long polling
func (c *Client) StopPolling() {
	c.api.StopReceivingUpdates()
}

// SendMessage отправляет новое сообщение, опционально с инлайн-клавиатурой
func (c *Client) SendMessage(chatID int64, text string, keyboard InlineKeyboard) (MessageRef, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if keyboard != nil {
		msg.ReplyMarkup = toMarkup(keyboard)
	}

	sent, err := c.api.Send(msg)
	if err != nil {
		return MessageRef{}, fmt.Errorf("%w: chat_id=%d: %v", ErrSendFailed, chatID, err)
	}

	return MessageRef{ChatID: chatID, MessageID: sent.MessageID}, nil
}

// EditMessage заменяет текст и клавиатуру существующего сообщения
func (c *Client) EditMessage(ref MessageRef, text string, keyboard InlineKeyboard) error {
	msg := tgbotapi.NewEditMessageText(ref.ChatID, ref.MessageID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if keyboard != nil {
		markup := toMarkup(keyboard)
		msg.ReplyMarkup = &markup
	}

	if _, err := c.api.Send(msg); err != nil {
		return fmt.Errorf("%w: chat_id=%d, message_id=%d: %v", ErrEditFailed, ref.ChatID, ref.MessageID, err)
	}

	return nil
}

// AnswerCallback подтверждает callback query, убирая спиннер на кнопке
func (c *Client) AnswerCallback(callbackID string) error {
	if _, err := c.api.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		return fmt.Errorf("%w: callback_id=%s: %v", ErrSendFailed, callbackID, err)
	}
	return nil
}

func toMarkup(keyboard InlineKeyboard) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(keyboard))
	for _, row := range keyboard {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
		}
		rows = append(rows, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
