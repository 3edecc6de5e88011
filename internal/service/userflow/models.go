package userflow

import (
	"github.com/m04kA/SMC-SalonBot/internal/integrations/telegram"
)

// Conversation контекст входящего действия пользователя
type Conversation struct {
	ChatID   int64               // чат пользователя
	Message  telegram.MessageRef // сообщение с клавиатурой, которое редактируется
	UserName string              // отображаемое имя пользователя
	Username *string             // telegram username, может отсутствовать
}
