package my_bookings

import (
	"context"

	bookingsService "github.com/thalibook/thalibook-api/internal/service/bookings"
	"github.com/thalibook/thalibook-api/internal/domain"
	"github.com/thalibook/thalibook-api/internal/service/bookings/models"
)

var _ BookingService = (*bookingsService.Service)(nil)

type BookingService interface {
	ListForUser(ctx context.Context, userID int64, role domain.Role) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
