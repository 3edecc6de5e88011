package domain

import (
	"time"
)

// BookingStatus represents the resolution outcome of a booking request
type BookingStatus string

const (
	StatusAccepted BookingStatus = "accepted"
	StatusRejected BookingStatus = "rejected"
)

// BookingRecord заявка на запись, ожидающая решения администратора
// Между Insert и Remove в реестре запись неизменяема
type BookingRecord struct {
	ID         int64
	UserChatID int64   // чат пользователя для ответных уведомлений
	UserName   string  // отображаемое имя пользователя
	Username   *string // telegram username, может отсутствовать
	Service    ServiceCode
	Slot       Slot
	CreatedAt  time.Time
}

// Resolution итог рассмотрения заявки администратором
type Resolution struct {
	Record     BookingRecord
	Status     BookingStatus
	Reason     *string // причина отклонения; nil при accept или /skip
	ResolvedAt time.Time
}

// IsAccepted returns true if the booking was accepted
func (r *Resolution) IsAccepted() bool {
	return r.Status == StatusAccepted
}

// IsRejected returns true if the booking was rejected
func (r *Resolution) IsRejected() bool {
	return r.Status == StatusRejected
}
