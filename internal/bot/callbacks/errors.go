package callbacks

import "errors"

var (
	// ErrUnknownAction возвращается, когда callback data не соответствует
	// ни одному известному формату. Обработчики трактуют это как no-op:
	// битую кнопку не отличить от устаревшего клиентского UI
	ErrUnknownAction = errors.New("callbacks: unknown action")
)
