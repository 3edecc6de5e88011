package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonBot/internal/bot/render"
	"github.com/m04kA/SMC-SalonBot/internal/domain"
)

// UseCase use case отправки заявки на рассмотрение администратору.
// Терминальный переход пользовательского флоу: единственное место,
// где появляются побочные эффекты (запись в реестр, уведомления).
type UseCase struct {
	registry     Registry
	messenger    Messenger
	adminChatID  int64
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	registry Registry,
	messenger Messenger,
	adminChatID int64,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		registry:     registry,
		messenger:    messenger,
		adminChatID:  adminChatID,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания заявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Регистрируем заявку. После Insert запись адресуема по id
	// и неизменяема до разрешения
	record := domain.BookingRecord{
		UserChatID: req.UserChatID,
		UserName:   req.UserName,
		Username:   req.Username,
		Service:    req.Service,
		Slot:       req.Slot,
		CreatedAt:  uc.timeProvider.Now(),
	}
	record.ID = uc.registry.Insert(record)
	uc.metrics.IncBookingCreated()

	uc.logger.Info("CreateBooking: registered booking id=%d, chat=%d, service=%s, slot=%s",
		record.ID, req.UserChatID, req.Service, req.Slot.String())

	// 3. Отправляем карточку в админский чат с кнопками решения.
	// Вставка в реестр авторитетна: при ошибке отправки запись не откатывается
	adminText := render.AdminRequestText(&record)
	if _, err := uc.messenger.SendMessage(uc.adminChatID, adminText, render.AdminRequestKeyboard(record.ID)); err != nil {
		uc.logger.Error("CreateBooking: failed to notify admin chat for booking id=%d: %v", record.ID, err)
		return nil, fmt.Errorf("%w: booking id=%d: %v", ErrAdminNotifyFailed, record.ID, err)
	}

	// 4. Подтверждаем пользователю приём заявки
	if err := uc.messenger.EditMessage(req.UserMessage, render.UserAck(), nil); err != nil {
		uc.logger.Error("CreateBooking: failed to acknowledge user chat=%d for booking id=%d: %v",
			req.UserChatID, record.ID, err)
		return nil, fmt.Errorf("%w: booking id=%d: %v", ErrUserNotifyFailed, record.ID, err)
	}

	uc.logger.Info("CreateBooking: booking id=%d submitted for approval", record.ID)

	return &Response{BookingID: record.ID}, nil
}
