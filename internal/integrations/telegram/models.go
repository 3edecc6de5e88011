package telegram

// Button инлайн-кнопка с текстом и callback data
type Button struct {
	Text string
	Data string
}

// InlineKeyboard раскладка инлайн-кнопок по рядам
type InlineKeyboard [][]Button

// MessageRef ссылка на отправленное сообщение, достаточная для
// последующего редактирования
type MessageRef struct {
	ChatID    int64
	MessageID int
}
