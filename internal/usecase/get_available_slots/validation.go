package get_available_slots

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Page < 0 {
		return fmt.Errorf("%w: page must be non-negative, got %d", ErrInvalidInput, req.Page)
	}

	return nil
}
