package create_booking

import (
	"fmt"
	"time"

	"github.com/thalibook/thalibook-api/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.RestaurantID <= 0 {
		return fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if req.PartySize <= 0 {
		return fmt.Errorf("%w: partySize must be positive", ErrInvalidInput)
	}

	if req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize exceeds %d", ErrInvalidInput, domain.MaxPartySize)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(requestDate, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	requestDateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, requestDate.Location())

	if requestDateOnly.Before(today) {
		return ErrInvalidDate
	}

	return nil
}
