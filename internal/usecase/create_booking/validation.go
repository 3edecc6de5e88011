package create_booking

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserChatID == 0 {
		return fmt.Errorf("%w: userChatID is required", ErrInvalidInput)
	}

	if req.UserName == "" {
		return fmt.Errorf("%w: userName is required", ErrInvalidInput)
	}

	if !req.Service.IsValid() {
		return fmt.Errorf("%w: unknown service %q", ErrInvalidInput, string(req.Service))
	}

	if req.Slot.Date.IsZero() {
		return fmt.Errorf("%w: slot date is required", ErrInvalidInput)
	}

	if req.Slot.StartTime.IsZero() {
		return fmt.Errorf("%w: slot startTime is required", ErrInvalidInput)
	}

	if err := req.Slot.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid slot startTime: %v", ErrInvalidInput, err)
	}

	return nil
}
