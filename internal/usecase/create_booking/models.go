package create_booking

import (
	"github.com/m04kA/SMC-SalonBot/internal/domain"
	"github.com/m04kA/SMC-SalonBot/internal/integrations/telegram"
)

// Request модель запроса на создание заявки
type Request struct {
	UserChatID  int64               // чат пользователя
	UserName    string              // отображаемое имя пользователя
	Username    *string             // telegram username, может отсутствовать
	Service     domain.ServiceCode  // выбранная услуга
	Slot        domain.Slot         // выбранный слот
	UserMessage telegram.MessageRef // сообщение пользователя для подтверждающего edit
}

// Response модель ответа с созданной заявкой
type Response struct {
	BookingID int64 // присвоенный идентификатор заявки
}
