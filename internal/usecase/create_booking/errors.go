package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrAdminNotifyFailed возвращается, когда карточка заявки не дошла до
	// администратора. Запись в реестре при этом остаётся: вставка
	// авторитетна, уведомление не откатывает её
	ErrAdminNotifyFailed = errors.New("failed to notify admin chat")

	// ErrUserNotifyFailed возвращается при ошибке подтверждения пользователю
	ErrUserNotifyFailed = errors.New("failed to acknowledge user")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
