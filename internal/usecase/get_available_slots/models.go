package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonBot/internal/domain"
)

// Request модель запроса страницы доступных слотов
type Request struct {
	ChatID int64     // ID чата пользователя (для логирования, не влияет на результат)
	Date   time.Time // Дата, на которую нужны слоты (без времени)
	Page   int       // Номер страницы, начиная с 0
}

// Response модель ответа со страницей слотов
type Response struct {
	Date       time.Time     // Дата, на которую запрашивались слоты
	Page       int           // Номер страницы
	Slots      []domain.Slot // Слоты видимой страницы
	HasPrev    bool          // Есть ли страница слева
	HasNext    bool          // Есть ли страница справа
	TotalSlots int           // Общее количество слотов на дату после фильтрации
}
