package confirm_booking

import (
	"context"

	"github.com/thalibook/thalibook-api/internal/domain"
	bookingsService "github.com/thalibook/thalibook-api/internal/service/bookings"
	"github.com/thalibook/thalibook-api/internal/service/bookings/models"
)

var _ BookingService = (*bookingsService.Service)(nil)

type BookingService interface {
	Confirm(ctx context.Context, bookingID, userID int64, role domain.Role) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
