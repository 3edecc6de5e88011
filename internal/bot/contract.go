package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/m04kA/SMC-SalonBot/internal/bot/callbacks"
	"github.com/m04kA/SMC-SalonBot/internal/integrations/telegram"
	"github.com/m04kA/SMC-SalonBot/internal/service/userflow"
)

// UserFlow интерфейс пользовательского флоу записи
type UserFlow interface {
	Start(ctx context.Context, chatID int64) error
	HandleAction(ctx context.Context, conv userflow.Conversation, action callbacks.Action) error
}

// AdminFlow интерфейс админского флоу рассмотрения заявок
type AdminFlow interface {
	HandleDecision(ctx context.Context, ref telegram.MessageRef, action callbacks.Action) error
	HandleText(ctx context.Context, adminChatID int64, text string) error
}

// Messenger интерфейс Telegram-транспорта: канал обновлений,
// служебные ответы и подтверждение callback query
type Messenger interface {
	Updates(pollTimeout int) tgbotapi.UpdatesChannel
	StopPolling()
	SendMessage(chatID int64, text string, keyboard telegram.InlineKeyboard) (telegram.MessageRef, error)
	AnswerCallback(callbackID string) error
}

// Metrics интерфейс счётчиков транспортного уровня
type Metrics interface {
	IncUpdate(kind string)
	IncMalformedCallback()
	IncSendError()
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
