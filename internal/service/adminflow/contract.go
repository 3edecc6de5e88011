package adminflow

import (
	"context"

	"github.com/m04kA/SMC-SalonBot/internal/domain"
	"github.com/m04kA/SMC-SalonBot/internal/integrations/telegram"
)

// Registry интерфейс реестра неразрешённых заявок
// Флоу читает запись по клику reject, но удаление выполняет только
// ResolveUseCase на терминальном переходе
type Registry interface {
	Get(id int64) (*domain.BookingRecord, error)
}

// ResolveUseCase интерфейс use case разрешения заявки
type ResolveUseCase interface {
	Accept(ctx context.Context, bookingID int64) (*domain.BookingRecord, error)
	Reject(ctx context.Context, bookingID int64, reason *string) (*domain.BookingRecord, error)
}

// Pending интерфейс хранилища заявок, ожидающих причину отклонения
type Pending interface {
	Set(adminChatID, bookingID int64)
	Pop(adminChatID int64) (int64, bool)
}

// Messenger интерфейс исходящих сообщений
type Messenger interface {
	SendMessage(chatID int64, text string, keyboard telegram.InlineKeyboard) (telegram.MessageRef, error)
	EditMessage(ref telegram.MessageRef, text string, keyboard telegram.InlineKeyboard) error
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
