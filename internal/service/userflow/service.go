package userflow

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBot/internal/bot/callbacks"
	"github.com/m04kA/SMC-SalonBot/internal/bot/render"
	"github.com/m04kA/SMC-SalonBot/internal/domain"
	createBooking "github.com/m04kA/SMC-SalonBot/internal/usecase/create_booking"
	getAvailableSlots "github.com/m04kA/SMC-SalonBot/internal/usecase/get_available_slots"
)

// Service машина состояний пользовательского флоу записи:
// категория → услуга → дата → слот → отправка заявки.
// Все промежуточные переходы — чистая навигация по сессии; побочные
// эффекты (реестр, уведомления) происходят только на терминальном
// переходе внутри CreateBookingUseCase.
type Service struct {
	sessions      Sessions
	slotsUC       SlotsUseCase
	createUC      CreateBookingUseCase
	messenger     Messenger
	lookaheadDays int
	location      *time.Location
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр пользовательского флоу
func NewService(
	sessions Sessions,
	slotsUC SlotsUseCase,
	createUC CreateBookingUseCase,
	messenger Messenger,
	lookaheadDays int,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		sessions:      sessions,
		slotsUC:       slotsUC,
		createUC:      createUC,
		messenger:     messenger,
		lookaheadDays: lookaheadDays,
		location:      location,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Start начинает (или перезапускает) диалог записи.
// Предыдущие выборы отбрасываются; приглашение уходит НОВЫМ сообщением,
// потому что кнопка "новая запись" приходит асинхронно после разрешения
// предыдущей заявки
func (s *Service) Start(ctx context.Context, chatID int64) error {
	s.sessions.Put(chatID, domain.SelectCategory{})

	if _, err := s.messenger.SendMessage(chatID, render.CategoryPrompt(), render.CategoryKeyboard()); err != nil {
		s.logger.Error("UserFlow: failed to send category prompt to chat=%d: %v", chatID, err)
		return fmt.Errorf("%w: chat=%d: %v", ErrSendFailed, chatID, err)
	}

	s.logger.Info("UserFlow: started booking conversation for chat=%d", chatID)
	return nil
}

// HandleAction обрабатывает типизированное действие пользователя.
// Действие, не опознанное текущей стадией, игнорируется: диалог остаётся
// на месте и ждёт валидного действия
func (s *Service) HandleAction(ctx context.Context, conv Conversation, action callbacks.Action) error {
	session, ok := s.sessions.Get(conv.ChatID)
	if !ok {
		s.logger.Debug("UserFlow: no session for chat=%d, ignoring %T", conv.ChatID, action)
		return nil
	}

	switch stage := session.(type) {
	case domain.SelectCategory:
		return s.handleSelectCategory(conv, action)
	case domain.SelectService:
		return s.handleSelectService(conv, action)
	case domain.SelectDate:
		return s.handleSelectDate(ctx, conv, stage, action)
	case domain.SelectSlot:
		return s.handleSelectSlot(ctx, conv, stage, action)
	default:
		s.logger.Warn("UserFlow: unknown session stage %T for chat=%d", session, conv.ChatID)
		return nil
	}
}

func (s *Service) handleSelectCategory(conv Conversation, action callbacks.Action) error {
	pick, ok := action.(callbacks.PickCategory)
	if !ok {
		s.logger.Debug("UserFlow: chat=%d in select_category, ignoring %T", conv.ChatID, action)
		return nil
	}

	s.sessions.Put(conv.ChatID, domain.SelectService{Category: pick.Category})

	if err := s.messenger.EditMessage(conv.Message, render.ServicePrompt(), render.ServiceKeyboard(pick.Category)); err != nil {
		s.logger.Error("UserFlow: failed to render services for chat=%d: %v", conv.ChatID, err)
		return fmt.Errorf("%w: chat=%d: %v", ErrSendFailed, conv.ChatID, err)
	}

	return nil
}

func (s *Service) handleSelectService(conv Conversation, action callbacks.Action) error {
	pick, ok := action.(callbacks.PickService)
	if !ok {
		s.logger.Debug("UserFlow: chat=%d in select_service, ignoring %T", conv.ChatID, action)
		return nil
	}

	s.sessions.Put(conv.ChatID, domain.SelectDate{Service: pick.Service})

	dates := s.upcomingDates()
	if err := s.messenger.EditMessage(conv.Message, render.DatePrompt(), render.DateKeyboard(dates)); err != nil {
		s.logger.Error("UserFlow: failed to render dates for chat=%d: %v", conv.ChatID, err)
		return fmt.Errorf("%w: chat=%d: %v", ErrSendFailed, conv.ChatID, err)
	}

	return nil
}

func (s *Service) handleSelectDate(ctx context.Context, conv Conversation, stage domain.SelectDate, action callbacks.Action) error {
	pick, ok := action.(callbacks.PickDate)
	if !ok {
		s.logger.Debug("UserFlow: chat=%d in select_date, ignoring %T", conv.ChatID, action)
		return nil
	}

	next := domain.SelectSlot{Service: stage.Service, Date: pick.Date, Page: 0}
	s.sessions.Put(conv.ChatID, next)

	return s.renderSlotPage(ctx, conv, next)
}

func (s *Service) handleSelectSlot(ctx context.Context, conv Conversation, stage domain.SelectSlot, action callbacks.Action) error {
	switch act := action.(type) {
	case callbacks.Paginate:
		return s.handlePaginate(ctx, conv, stage, act)
	case callbacks.PickSlot:
		return s.handlePickSlot(ctx, conv, stage, act)
	default:
		s.logger.Debug("UserFlow: chat=%d in select_slot, ignoring %T", conv.ChatID, action)
		return nil
	}
}

func (s *Service) handlePaginate(ctx context.Context, conv Conversation, stage domain.SelectSlot, act callbacks.Paginate) error {
	// Сверяем навигацию с текущей страницей: сдвиг возможен только туда,
	// куда была показана кнопка. Устаревший клик игнорируется, чтобы
	// страница не вышла за границы пейджера
	current, err := s.slotsUC.Execute(ctx, &getAvailableSlots.Request{
		ChatID: conv.ChatID,
		Date:   stage.Date,
		Page:   stage.Page,
	})
	if err != nil {
		s.logger.Error("UserFlow: failed to get slots for chat=%d: %v", conv.ChatID, err)
		return fmt.Errorf("%w: chat=%d: %v", ErrInternal, conv.ChatID, err)
	}

	switch {
	case act.Next && current.HasNext:
		stage.Page++
	case !act.Next && current.HasPrev:
		stage.Page--
	default:
		s.logger.Debug("UserFlow: chat=%d pagination out of range (page=%d), ignoring", conv.ChatID, stage.Page)
		return nil
	}

	s.sessions.Put(conv.ChatID, stage)
	return s.renderSlotPage(ctx, conv, stage)
}

func (s *Service) handlePickSlot(ctx context.Context, conv Conversation, stage domain.SelectSlot, act callbacks.PickSlot) error {
	_, err := s.createUC.Execute(ctx, &createBooking.Request{
		UserChatID:  conv.ChatID,
		UserName:    conv.UserName,
		Username:    conv.Username,
		Service:     stage.Service,
		Slot:        act.Slot,
		UserMessage: conv.Message,
	})
	if err != nil {
		s.logger.Error("UserFlow: failed to submit booking for chat=%d: %v", conv.ChatID, err)
		return err
	}

	// Терминальный переход: сессия очищается целиком
	s.sessions.Delete(conv.ChatID)
	return nil
}

func (s *Service) renderSlotPage(ctx context.Context, conv Conversation, stage domain.SelectSlot) error {
	resp, err := s.slotsUC.Execute(ctx, &getAvailableSlots.Request{
		ChatID: conv.ChatID,
		Date:   stage.Date,
		Page:   stage.Page,
	})
	if err != nil {
		s.logger.Error("UserFlow: failed to get slots for chat=%d: %v", conv.ChatID, err)
		return fmt.Errorf("%w: chat=%d: %v", ErrInternal, conv.ChatID, err)
	}

	if err := s.messenger.EditMessage(conv.Message, render.SlotPrompt(resp), render.SlotKeyboard(resp)); err != nil {
		s.logger.Error("UserFlow: failed to render slots for chat=%d: %v", conv.ChatID, err)
		return fmt.Errorf("%w: chat=%d: %v", ErrSendFailed, conv.ChatID, err)
	}

	return nil
}

// upcomingDates даты для выбора: сегодня плюс lookaheadDays-1 следующих дней,
// в сконфигурированной таймзоне
func (s *Service) upcomingDates() []time.Time {
	now := s.timeProvider.Now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)

	dates := make([]time.Time, 0, s.lookaheadDays)
	for offset := 0; offset < s.lookaheadDays; offset++ {
		dates = append(dates, today.AddDate(0, 0, offset))
	}
	return dates
}
