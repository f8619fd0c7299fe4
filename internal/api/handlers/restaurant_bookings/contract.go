package restaurant_bookings

import (
	"context"

	bookingsService "github.com/thalibook/thalibook-api/internal/service/bookings"
	"github.com/thalibook/thalibook-api/internal/service/bookings/models"
)

var _ BookingService = (*bookingsService.Service)(nil)

type BookingService interface {
	GetRestaurantBookings(ctx context.Context, req *models.GetRestaurantBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
