package notifications

import (
	"context"

	"github.com/thalibook/thalibook-api/internal/domain"
)

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) (*domain.Notification, error)
	ListUnreadByUser(ctx context.Context, userID int64) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, notificationID, userID int64) error
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	FirstByRole(ctx context.Context, role domain.Role) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
