package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/thalibook/thalibook-api/internal/domain"
	notificationRepo "github.com/thalibook/thalibook-api/internal/infra/storage/notification"
	userRepo "github.com/thalibook/thalibook-api/internal/infra/storage/user"
	"github.com/thalibook/thalibook-api/internal/service/notifications/models"
)

// Service сервис для работы с уведомлениями
type Service struct {
	notificationRepo NotificationRepository
	userRepo         UserRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(
	notificationRepo NotificationRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

// ListUnread получает непрочитанные уведомления пользователя
func (s *Service) ListUnread(ctx context.Context, userID int64) (*models.NotificationListResponse, error) {
	s.logger.Info("ListUnread: fetching notifications for user=%d", userID)

	notifications, err := s.notificationRepo.ListUnreadByUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListUnread: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListUnread - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListUnread: fetched %d notifications for user=%d", len(notifications), userID)
	return models.FromDomainNotificationList(notifications), nil
}

// MarkRead помечает уведомление прочитанным и возвращает оставшиеся непрочитанные
func (s *Service) MarkRead(ctx context.Context, notificationID, userID int64) (*models.NotificationListResponse, error) {
	s.logger.Info("MarkRead: marking notification id=%d as read by user=%d", notificationID, userID)

	if err := s.notificationRepo.MarkRead(ctx, notificationID, userID); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("MarkRead: notification id=%d not found for user=%d", notificationID, userID)
			return nil, ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: repository error for notification id=%d: %v", notificationID, err)
		return nil, fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	return s.ListUnread(ctx, userID)
}

// Notify создает уведомление для пользователя.
// Ошибка доставки уведомления не должна ломать основную операцию,
// поэтому вызывающие стороны обычно только логируют её.
func (s *Service) Notify(ctx context.Context, userID int64, message string) error {
	notification := &domain.Notification{
		UserID:  userID,
		Message: message,
	}

	if _, err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.logger.Error("Notify: failed to create notification for user=%d: %v", userID, err)
		return fmt.Errorf("%w: Notify - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Notify: created notification id=%d for user=%d", notification.ID, userID)
	return nil
}

// NotifyAdmin создает уведомление для администратора платформы.
// Если администратор не зарегистрирован, уведомление молча пропускается.
func (s *Service) NotifyAdmin(ctx context.Context, message string) error {
	admin, err := s.userRepo.FirstByRole(ctx, domain.RoleAdmin)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("NotifyAdmin: no admin user registered, skipping notification")
			return nil
		}
		s.logger.Error("NotifyAdmin: failed to find admin user: %v", err)
		return fmt.Errorf("%w: NotifyAdmin - repository error: %v", ErrInternal, err)
	}

	return s.Notify(ctx, admin.ID, message)
}
