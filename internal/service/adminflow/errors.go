package adminflow

import "errors"

var (
	// ErrSendFailed возвращается при ошибке отправки или редактирования
	// сообщения в админский чат
	ErrSendFailed = errors.New("adminflow: failed to send message")

	// ErrInternal возвращается при внутренних ошибках флоу
	ErrInternal = errors.New("adminflow: internal error")
)
