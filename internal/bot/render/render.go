// Package render собирает тексты сообщений и инлайн-клавиатуры бота.
// Статическая таблица надписей: локализация за её пределами не поддерживается.
package render

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBot/internal/bot/callbacks"
	"github.com/m04kA/SMC-SalonBot/internal/domain"
	"github.com/m04kA/SMC-SalonBot/internal/integrations/telegram"
	get_available_slots "github.com/m04kA/SMC-SalonBot/internal/usecase/get_available_slots"
)

// Тексты сообщений
const (
	msgWelcome      = "Добро Пожаловать в Solo Beauty!\nПожалуйста выберите категорию:"
	msgPickService  = "Пожалуйста Выберите Услугу:"
	msgPickDate     = "Пожалуйста выберите дату:"
	msgPickSlot     = "Select a timeslot:"
	msgNoSlots      = "К сожалению, на эту дату нет доступных слотов."
	msgUserAck      = "👌 Ваш запрос рассматривается, вам скоро ответят :)"
	msgStaleRequest = "⚠️ Запрос не найден или закрыт."
	msgUnavailable  = "⚠️ Этот запрос больше не доступен."
)

// Надписи кнопок
const (
	btnWomen      = "👩 Для Женщин"
	btnMen        = "👨 Для Мужчин"
	btnAccept     = "✅ Принять"
	btnReject     = "❌ Отклонить"
	btnPagePrev   = "← Back"
	btnPageNext   = "Next →"
	btnNewBooking = "📅 Новая запись"
)

// serviceButtons надписи кнопок услуг
var serviceButtons = map[domain.ServiceCode]string{
	domain.ServiceWomenHaircut:  "💇 Стрижка",
	domain.ServiceWomenColoring: "🎨 Окрашивание",
	domain.ServiceMenHaircut:    "💈 Стрижка",
	domain.ServiceMenBarber:     "🪒 Барберские Услуги и Борода",
}

// CategoryPrompt текст приветствия с выбором категории
func CategoryPrompt() string { return msgWelcome }

// CategoryKeyboard клавиатура выбора категории
func CategoryKeyboard() telegram.InlineKeyboard {
	return telegram.InlineKeyboard{
		{
			{Text: btnWomen, Data: callbacks.CategoryData(domain.CategoryWomen)},
			{Text: btnMen, Data: callbacks.CategoryData(domain.CategoryMen)},
		},
	}
}

// ServicePrompt текст выбора услуги
func ServicePrompt() string { return msgPickService }

// ServiceKeyboard клавиатура услуг выбранной категории
func ServiceKeyboard(category domain.Category) telegram.InlineKeyboard {
	row := make([]telegram.Button, 0, 2)
	for _, service := range domain.ServicesByCategory(category) {
		row = append(row, telegram.Button{
			Text: serviceButtons[service],
			Data: callbacks.ServiceData(service),
		})
	}
	return telegram.InlineKeyboard{row}
}

// DatePrompt текст выбора даты
func DatePrompt() string { return msgPickDate }

// DateKeyboard клавиатура с датами, по одной в ряд
func DateKeyboard(dates []time.Time) telegram.InlineKeyboard {
	keyboard := make(telegram.InlineKeyboard, 0, len(dates))
	for _, d := range dates {
		keyboard = append(keyboard, []telegram.Button{{
			Text: d.Format(domain.DateFormat),
			Data: callbacks.DateData(d),
		}})
	}
	return keyboard
}

// SlotPrompt текст страницы слотов; отдельное сообщение для пустой страницы
func SlotPrompt(resp *get_available_slots.Response) string {
	if resp.TotalSlots == 0 {
		return msgNoSlots
	}
	return msgPickSlot
}

// SlotKeyboard клавиатура страницы слотов: по слоту в ряд плюс
// навигационный ряд, если есть соседние страницы.
// Для пустой страницы возвращает nil: ни слотов, ни навигации.
func SlotKeyboard(resp *get_available_slots.Response) telegram.InlineKeyboard {
	if resp.TotalSlots == 0 {
		return nil
	}

	keyboard := make(telegram.InlineKeyboard, 0, len(resp.Slots)+1)
	for _, slot := range resp.Slots {
		keyboard = append(keyboard, []telegram.Button{{
			Text: slot.String(),
			Data: callbacks.SlotData(slot),
		}})
	}

	nav := make([]telegram.Button, 0, 2)
	if resp.HasPrev {
		nav = append(nav, telegram.Button{Text: btnPagePrev, Data: callbacks.PagePrevData()})
	}
	if resp.HasNext {
		nav = append(nav, telegram.Button{Text: btnPageNext, Data: callbacks.PageNextData()})
	}
	if len(nav) > 0 {
		keyboard = append(keyboard, nav)
	}

	return keyboard
}

// UserAck подтверждение пользователю после отправки заявки
func UserAck() string { return msgUserAck }

// Footer общие детали заявки для карточек администратора и уведомлений
func Footer(record *domain.BookingRecord) string {
	username := "—"
	if record.Username != nil {
		username = *record.Username
	}
	return fmt.Sprintf(
		"*Booking ID:* `%d`\n*Name:* %s\n*Username:* @%s\n*Service:* %s\n*Timeslot:* %s",
		record.ID, record.UserName, username, record.Service.Label(), record.Slot.String(),
	)
}

// AdminRequestText карточка новой заявки для админского чата
func AdminRequestText(record *domain.BookingRecord) string {
	return "🆕 *New Booking Request*\n" + Footer(record)
}

// AdminRequestKeyboard кнопки принятия решения по заявке
func AdminRequestKeyboard(bookingID int64) telegram.InlineKeyboard {
	return telegram.InlineKeyboard{
		{
			{Text: btnAccept, Data: callbacks.AcceptData(bookingID)},
			{Text: btnReject, Data: callbacks.RejectData(bookingID)},
		},
	}
}

// StaleRequestText сообщение о заявке, которой больше нет в реестре
func StaleRequestText() string { return msgStaleRequest }

// NoLongerAvailableText сообщение для админского чата без ожидающей заявки
func NoLongerAvailableText() string { return msgUnavailable }

// AdminAcceptedText финальная карточка принятой заявки в админском чате
func AdminAcceptedText(record *domain.BookingRecord) string {
	return "✅ *Запрос Принят!*\n\n" + Footer(record)
}

// AdminRejectPromptText запрос причины отклонения у администратора
func AdminRejectPromptText(record *domain.BookingRecord) string {
	return "❌ *Booking pending rejection*\n\n" + Footer(record) +
		"\n\nПожалуйста напишите *причину отклонения* (или отправьте `/skip` для отклонения без комментариев):"
}

// AdminRejectedText подтверждение отклонения администратору
func AdminRejectedText(record *domain.BookingRecord, reason *string) string {
	return "❌ *Запрос Отклонён.*" + ReasonSuffix(reason) + "\n\n" + Footer(record)
}

// UserAcceptedText уведомление пользователя о принятой заявке
func UserAcceptedText(record *domain.BookingRecord) string {
	return "✅ Ваш запрос *принят*!\n\n" + Footer(record)
}

// UserRejectedText уведомление пользователя об отклонённой заявке
func UserRejectedText(record *domain.BookingRecord, reason *string) string {
	return "❌ Ваш запрос был *отклонён*." + ReasonSuffix(reason) + "\n\n" + Footer(record)
}

// ReasonSuffix блок причины отклонения; пустой при /skip
func ReasonSuffix(reason *string) string {
	if reason == nil || *reason == "" {
		return ""
	}
	return "\n\n_Reason:_ " + *reason
}

// NewBookingKeyboard кнопка "начать новую запись" после разрешения заявки
func NewBookingKeyboard() telegram.InlineKeyboard {
	return telegram.InlineKeyboard{
		{{Text: btnNewBooking, Data: callbacks.NewBookingData()}},
	}
}

// ChatIDText ответ на служебную команду /getid
func ChatIDText(chatID int64) string {
	return fmt.Sprintf("Chat ID is: %d", chatID)
}
