package cancel_booking

import (
	"context"

	"github.com/thalibook/thalibook-api/internal/domain"
	bookingsService "github.com/thalibook/thalibook-api/internal/service/bookings"
)

var _ BookingService = (*bookingsService.Service)(nil)

type BookingService interface {
	Cancel(ctx context.Context, bookingID, userID int64, role domain.Role) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
