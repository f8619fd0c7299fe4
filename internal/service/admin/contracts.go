package admin

import (
	"context"

	"github.com/thalibook/thalibook-api/internal/domain"
	bookingRepo "github.com/thalibook/thalibook-api/internal/infra/storage/booking"
)

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
	SetApproved(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	CountByApproved(ctx context.Context, approved bool) (int64, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error)
	TopRestaurants(ctx context.Context, limit uint64) ([]bookingRepo.TopRestaurant, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Count(ctx context.Context) (int64, error)
}

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Count(ctx context.Context) (int64, error)
}

// Notifier интерфейс для отправки уведомлений
type Notifier interface {
	Notify(ctx context.Context, userID int64, message string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
