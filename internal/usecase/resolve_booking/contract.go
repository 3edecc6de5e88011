package resolve_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBot/internal/domain"
	"github.com/m04kA/SMC-SalonBot/internal/integrations/telegram"
)

// Registry интерфейс реестра неразрешённых заявок
type Registry interface {
	// Remove атомарно читает и удаляет запись; второй вызов для того же id
	// возвращает ошибку "not found"
	Remove(id int64) (*domain.BookingRecord, error)
}

// Messenger интерфейс исходящих сообщений
type Messenger interface {
	SendMessage(chatID int64, text string, keyboard telegram.InlineKeyboard) (telegram.MessageRef, error)
}

// Journal интерфейс журнала разрешённых заявок
type Journal interface {
	Append(ctx context.Context, resolution *domain.Resolution) error
}

// Metrics интерфейс счётчиков заявок
type Metrics interface {
	IncBookingAccepted()
	IncBookingRejected()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
