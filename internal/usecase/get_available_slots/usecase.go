package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBot/internal/config"
	"github.com/m04kA/SMC-SalonBot/internal/domain"
)

// UseCase use case получения страницы доступных слотов на дату
type UseCase struct {
	openHour     int
	closeHour    int
	stepMinutes  int
	pageSize     int
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(cfg config.BookingConfig, logger Logger) (*UseCase, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load timezone %q: %v", ErrInternal, cfg.Timezone, err)
	}

	return &UseCase{
		openHour:     cfg.OpenHour,
		closeHour:    cfg.CloseHour,
		stepMinutes:  cfg.SlotStepMinutes,
		pageSize:     cfg.PageSize,
		location:     loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}, nil
}

// PageSize возвращает размер страницы слотов
func (uc *UseCase) PageSize() int {
	return uc.pageSize
}

// Location возвращает таймзону, в которой считаются "сегодня" и слоты
func (uc *UseCase) Location() *time.Location {
	return uc.location
}

// Execute выполняет use case получения страницы слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// "Сегодня" считается в сконфигурированной таймзоне, не в локальной
	now := uc.timeProvider.Now().In(uc.location)

	timeSlots, err := generateTimeSlots(uc.openHour, uc.closeHour, uc.stepMinutes, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	chunk, hasPrev, hasNext := pageSlice(timeSlots, req.Page, uc.pageSize)

	slots := make([]domain.Slot, 0, len(chunk))
	for _, start := range chunk {
		slots = append(slots, domain.NewSlot(req.Date, start))
	}

	uc.logger.Info("GetAvailableSlots: chat=%d, date=%s, page=%d: %d of %d slots",
		req.ChatID, req.Date.Format(domain.DateFormat), req.Page, len(slots), len(timeSlots))

	return &Response{
		Date:       req.Date,
		Page:       req.Page,
		Slots:      slots,
		HasPrev:    hasPrev,
		HasNext:    hasNext,
		TotalSlots: len(timeSlots),
	}, nil
}
