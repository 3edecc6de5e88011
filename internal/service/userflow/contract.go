package userflow

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBot/internal/domain"
	"github.com/m04kA/SMC-SalonBot/internal/integrations/telegram"
	createBooking "github.com/m04kA/SMC-SalonBot/internal/usecase/create_booking"
	getAvailableSlots "github.com/m04kA/SMC-SalonBot/internal/usecase/get_available_slots"
)

// Sessions интерфейс хранилища сессий диалога
type Sessions interface {
	Get(chatID int64) (domain.Session, bool)
	Put(chatID int64, session domain.Session)
	Delete(chatID int64)
}

// SlotsUseCase интерфейс use case получения страницы слотов
type SlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// CreateBookingUseCase интерфейс use case отправки заявки
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Messenger интерфейс исходящих сообщений
type Messenger interface {
	SendMessage(chatID int64, text string, keyboard telegram.InlineKeyboard) (telegram.MessageRef, error)
	EditMessage(ref telegram.MessageRef, text string, keyboard telegram.InlineKeyboard) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
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
