package admin_analytics

import (
	"context"

	adminService "github.com/thalibook/thalibook-api/internal/service/admin"
	"github.com/thalibook/thalibook-api/internal/service/admin/models"
)

var _ AdminService = (*adminService.Service)(nil)

type AdminService interface {
	Analytics(ctx context.Context) (*models.BookingAnalytics, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
