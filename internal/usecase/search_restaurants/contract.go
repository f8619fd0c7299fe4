package search_restaurants

import (
	"context"
	"time"

	"github.com/thalibook/thalibook-api/internal/domain"
	restaurantRepo "github.com/thalibook/thalibook-api/internal/infra/storage/restaurant"
)

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	// ListApproved получает одобренные рестораны с фильтром по городу или диапазону zip-кодов
	ListApproved(ctx context.Context, filter restaurantRepo.ApprovedFilter) ([]*domain.Restaurant, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByRestaurantWithFilter(ctx context.Context, filter domain.RestaurantBookingsFilter) ([]*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
