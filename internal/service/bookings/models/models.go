package models

import (
	"errors"
	"time"

	"github.com/thalibook/thalibook-api/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetRestaurantBookingsRequest запрос на получение бронирований ресторана
type GetRestaurantBookingsRequest struct {
	UserID          int64        `json:"userId"`
	Role            domain.Role  `json:"role"`
	RestaurantID    int64        `json:"restaurantId"`
	Date            *time.Time   `json:"date,omitempty"`            // Фильтр по дате (опционально)
	Status          *string      `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool         `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetRestaurantBookingsRequest) ToDomainFilter() (domain.RestaurantBookingsFilter, error) {
	filter := domain.RestaurantBookingsFilter{
		RestaurantID:    r.RestaurantID,
		Date:            r.Date,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	RestaurantID int64     `json:"restaurantId"`
	TableID      int64     `json:"tableId"`
	Date         string    `json:"date"`      // "2026-03-15"
	Time         string    `json:"time"`      // "19:00"
	PartySize    int       `json:"partySize"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		RestaurantID: b.RestaurantID,
		TableID:      b.TableID,
		Date:         b.Date.Format(domain.DateFormat),
		Time:         b.Time.String(),
		PartySize:    b.PartySize,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}

	return &BookingListResponse{Bookings: result}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusPending:
		return domain.StatusPending, nil
	case domain.StatusConfirmed:
		return domain.StatusConfirmed, nil
	case domain.StatusCancelled:
		return domain.StatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}
