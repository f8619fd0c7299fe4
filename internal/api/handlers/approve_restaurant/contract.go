package approve_restaurant

import (
	"context"

	adminService "github.com/thalibook/thalibook-api/internal/service/admin"
)

var _ AdminService = (*adminService.Service)(nil)

type AdminService interface {
	ApproveRestaurant(ctx context.Context, restaurantID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
