package sessions

import "sync"

// PendingRejections booking id, ожидающие причину отклонения,
// по одному на админский чат. Запись существует только между кликом
// reject и отправкой причины (или /skip).
type PendingRejections struct {
	mu    sync.Mutex
	items map[int64]int64 // admin chat id -> booking id
}

// NewPendingRejections создает пустое хранилище
func NewPendingRejections() *PendingRejections {
	return &PendingRejections{items: make(map[int64]int64)}
}

// Set запоминает заявку, ожидающую причину отклонения от этого чата
func (p *PendingRejections) Set(adminChatID, bookingID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.items[adminChatID] = bookingID
}

// Pop атомарно забирает и удаляет ожидающую заявку чата
func (p *PendingRejections) Pop(adminChatID int64) (int64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	bookingID, ok := p.items[adminChatID]
	if ok {
		delete(p.items, adminChatID)
	}
	return bookingID, ok
}
