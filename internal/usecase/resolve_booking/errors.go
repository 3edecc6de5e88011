package resolve_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда заявки уже нет в реестре:
	// она разрешена другим действием или никогда не существовала.
	// Проигравшая сторона гонки accept/reject получает именно эту ошибку
	// и не отправляет пользователю повторное уведомление
	ErrBookingNotFound = errors.New("booking not found or already resolved")

	// ErrUserNotifyFailed возвращается, когда уведомление пользователю не
	// удалось отправить. Разрешение заявки при этом уже состоялось:
	// Remove из реестра авторитетен и не откатывается
	ErrUserNotifyFailed = errors.New("failed to notify user")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
