package create_booking

import (
	"time"

	"github.com/thalibook/thalibook-api/internal/domain"
	createBooking "github.com/thalibook/thalibook-api/internal/usecase/create_booking"
	"github.com/thalibook/thalibook-api/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RestaurantID int64  `json:"restaurantId"`
	Date         string `json:"date"` // "2026-03-15"
	Time         string `json:"time"` // "19:00"
	PartySize    int    `json:"partySize"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	RestaurantID int64  `json:"restaurantId"`
	TableID      int64  `json:"tableId"`
	TableSize    int    `json:"tableSize"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	PartySize    int    `json:"partySize"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:       userID,
		RestaurantID: r.RestaurantID,
		Date:         bookingDate,
		Time:         startTime,
		PartySize:    r.PartySize,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		UserID:       resp.UserID,
		RestaurantID: resp.RestaurantID,
		TableID:      resp.TableID,
		TableSize:    resp.TableSize,
		Date:         resp.Date.Format(domain.DateFormat),
		Time:         resp.Time.String(),
		PartySize:    resp.PartySize,
		Status:       resp.Status,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
