package registry

import "errors"

var (
	// ErrBookingNotFound возвращается, когда заявка отсутствует в реестре:
	// либо уже разрешена, либо никогда не существовала
	ErrBookingNotFound = errors.New("registry: booking not found")
)
