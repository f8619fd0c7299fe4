package list_notifications

import (
	"context"

	notificationsService "github.com/thalibook/thalibook-api/internal/service/notifications"
	"github.com/thalibook/thalibook-api/internal/service/notifications/models"
)

var _ NotificationService = (*notificationsService.Service)(nil)

type NotificationService interface {
	ListUnread(ctx context.Context, userID int64) (*models.NotificationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
