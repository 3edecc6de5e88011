package registry

import (
	"sync"

	"github.com/m04kA/SMC-SalonBot/internal/domain"
)

// Repository in-memory реестр неразрешённых заявок.
// Единственный разделяемый мьютабельный ресурс бота: счётчик идентификаторов
// и таблица записей защищены одним мьютексом, поэтому Insert выдаёт уникальные
// id, а Remove срабатывает ровно один раз при любом чередовании вызовов.
// Под мьютексом не выполняется никакого I/O.
type Repository struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]domain.BookingRecord
}

// NewRepository создает пустой реестр. Идентификаторы начинаются с 1
// и никогда не переиспользуются.
func NewRepository() *Repository {
	return &Repository{
		nextID: 1,
		items:  make(map[int64]domain.BookingRecord),
	}
}

// Insert присваивает записи следующий свободный id, сохраняет её и
// возвращает id. Запись копируется: после вставки она неизменяема
// вплоть до Remove.
func (r *Repository) Insert(record domain.BookingRecord) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.ID = r.nextID
	r.nextID++
	r.items[record.ID] = record

	return record.ID
}

// Get возвращает копию записи по id
func (r *Repository) Get(id int64) (*domain.BookingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.items[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	return &record, nil
}

// Remove атомарно читает и удаляет запись. Второй вызов для того же id
// вернёт ErrBookingNotFound — так обнаруживается повторное разрешение
// одной заявки (например, два одновременных клика accept).
func (r *Repository) Remove(id int64) (*domain.BookingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.items[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	delete(r.items, id)

	return &record, nil
}

// Len возвращает текущее количество неразрешённых заявок
func (r *Repository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.items)
}
