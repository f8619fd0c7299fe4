package restaurants

import (
	"context"
	"time"

	"github.com/thalibook/thalibook-api/internal/domain"
	"github.com/thalibook/thalibook-api/internal/integrations/geocoder"
)

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error)
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
	Update(ctx context.Context, restaurant *domain.Restaurant) error
	Delete(ctx context.Context, id int64) error
	ListByManager(ctx context.Context, managerID int64) ([]*domain.Restaurant, error)
	ListPending(ctx context.Context) ([]*domain.Restaurant, error)
	ListAll(ctx context.Context) ([]*domain.Restaurant, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByRestaurantWithFilter(ctx context.Context, filter domain.RestaurantBookingsFilter) ([]*domain.Booking, error)
	CountForDate(ctx context.Context, restaurantID int64, date time.Time) (int64, error)
}

// GeocoderClient интерфейс клиента геокодера
type GeocoderClient interface {
	GeocodeWithGracefulDegradation(ctx context.Context, address string) (*geocoder.Location, error)
}

// Notifier интерфейс для отправки уведомлений
type Notifier interface {
	NotifyAdmin(ctx context.Context, message string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
