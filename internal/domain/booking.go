package domain

import (
	"time"

	"github.com/thalibook/thalibook-api/pkg/types"
)

// BookingStatus represents the status of a table booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// Booking represents a table reservation in the system
type Booking struct {
	ID           int64
	UserID       int64
	RestaurantID int64
	TableID      int64 // синтетический ID стола, см. SyntheticTables
	Date         time.Time
	Time         types.TimeString
	PartySize    int
	Status       BookingStatus

	CreatedAt time.Time
}

// IsActive returns true if the booking still occupies its table
func (b *Booking) IsActive() bool {
	for _, s := range ActiveStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can move to CANCELLED.
// CANCELLED терминальный статус - повторная отмена запрещена.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the booking can move to CONFIRMED
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// WithinMatchWindow returns true if two times fall within windowMinutes
// of each other. Бронирование занимает стол не в точный момент, а в окне
// вокруг своего времени начала.
func WithinMatchWindow(a, b types.TimeString, windowMinutes int) bool {
	aMin, err := a.Minutes()
	if err != nil {
		return false
	}
	bMin, err := b.Minutes()
	if err != nil {
		return false
	}

	diff := aMin - bMin
	if diff < 0 {
		diff = -diff
	}
	return diff <= windowMinutes
}

// OccupiedTableIDs возвращает ID столов, занятых активными бронированиями
// в окне вокруг запрошенного времени
func OccupiedTableIDs(bookings []*Booking, at types.TimeString, windowMinutes int) map[int64]bool {
	occupied := make(map[int64]bool)
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if WithinMatchWindow(b.Time, at, windowMinutes) {
			occupied[b.TableID] = true
		}
	}
	return occupied
}

// RestaurantBookingsFilter фильтр для получения бронирований ресторана
type RestaurantBookingsFilter struct {
	RestaurantID    int64      // Обязательный параметр
	Date            *time.Time // Фильтр по дате (опционально)
	Status          *BookingStatus
	IncludeInactive bool // Включать ли отменённые бронирования
}
