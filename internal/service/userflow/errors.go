package userflow

import "errors"

var (
	// ErrSendFailed возвращается при ошибке отправки или редактирования
	// сообщения пользователю
	ErrSendFailed = errors.New("userflow: failed to send message")

	// ErrInternal возвращается при внутренних ошибках флоу
	ErrInternal = errors.New("userflow: internal error")
)
