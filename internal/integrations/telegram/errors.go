package telegram

import "errors"

var (
	// ErrSendFailed возвращается при ошибке отправки сообщения
	ErrSendFailed = errors.New("telegram client: failed to send message")

	// ErrEditFailed возвращается при ошибке редактирования сообщения
	ErrEditFailed = errors.New("telegram client: failed to edit message")
)
