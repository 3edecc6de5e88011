package sessions

import (
	"sync"

	"github.com/m04kA/SMC-SalonBot/internal/domain"
)

// Store хранилище сессий диалога записи, по одной на чат пользователя
type Store struct {
	mu    sync.Mutex
	items map[int64]domain.Session
}

// NewStore создает пустое хранилище сессий
func NewStore() *Store {
	return &Store{items: make(map[int64]domain.Session)}
}

// Get возвращает сессию чата
func (s *Store) Get(chatID int64) (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.items[chatID]
	return session, ok
}

// Put сохраняет сессию чата, заменяя предыдущую стадию
func (s *Store) Put(chatID int64, session domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[chatID] = session
}

// Delete полностью очищает сессию чата (терминальный переход)
func (s *Store) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, chatID)
}
