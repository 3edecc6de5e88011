package domain

import "time"

// Session состояние диалога записи для одного пользователя.
// Закрытое объединение: один вариант на стадию, каждый вариант несёт
// только те поля, которые валидны на этой стадии.
type Session interface {
	sessionStage() string
}

// SelectCategory начальная стадия: ожидается выбор категории услуг
type SelectCategory struct{}

// SelectService выбрана категория, ожидается выбор услуги
type SelectService struct {
	Category Category
}

// SelectDate выбрана услуга, ожидается выбор даты
type SelectDate struct {
	Service ServiceCode
}

// SelectSlot выбрана дата, ожидается выбор слота или листание страниц
type SelectSlot struct {
	Service ServiceCode
	Date    time.Time
	Page    int
}

func (SelectCategory) sessionStage() string { return "select_category" }
func (SelectService) sessionStage() string  { return "select_service" }
func (SelectDate) sessionStage() string     { return "select_date" }
func (SelectSlot) sessionStage() string     { return "select_slot" }
