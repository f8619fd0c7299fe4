package notifications

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalibook/thalibook-api/internal/domain"
	notificationRepo "github.com/thalibook/thalibook-api/internal/infra/storage/notification"
	userRepo "github.com/thalibook/thalibook-api/internal/infra/storage/user"
)

type fakeNotificationRepo struct {
	notifications []*domain.Notification
	nextID        int64
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	f.nextID++
	created := *n
	created.ID = f.nextID
	f.notifications = append(f.notifications, &created)
	n.ID = created.ID
	return &created, nil
}

func (f *fakeNotificationRepo) ListUnreadByUser(_ context.Context, userID int64) ([]*domain.Notification, error) {
	var out []*domain.Notification
	for _, n := range f.notifications {
		if n.UserID == userID && !n.IsRead {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, notificationID, userID int64) error {
	for _, n := range f.notifications {
		if n.ID == notificationID && n.UserID == userID {
			n.IsRead = true
			return nil
		}
	}
	return notificationRepo.ErrNotificationNotFound
}

type fakeUserRepo struct {
	admin *domain.User
}

func (f *fakeUserRepo) FirstByRole(_ context.Context, role domain.Role) (*domain.User, error) {
	if f.admin != nil && f.admin.Role == role {
		return f.admin, nil
	}
	return nil, userRepo.ErrUserNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestMarkRead_ReturnsRemainingUnread(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, &fakeUserRepo{}, nopLogger{})

	require.NoError(t, svc.Notify(context.Background(), 5, "Booking confirmed"))
	require.NoError(t, svc.Notify(context.Background(), 5, "Booking cancelled"))
	require.NoError(t, svc.Notify(context.Background(), 9, "New booking"))

	resp, err := svc.MarkRead(context.Background(), 1, 5)

	require.NoError(t, err)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "Booking cancelled", resp.Notifications[0].Message)
}

func TestMarkRead_ForeignNotificationNotFound(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, &fakeUserRepo{}, nopLogger{})

	require.NoError(t, svc.Notify(context.Background(), 9, "New booking"))

	// Чужое уведомление неотличимо от несуществующего
	_, err := svc.MarkRead(context.Background(), 1, 5)
	assert.ErrorIs(t, err, ErrNotificationNotFound)

	_, err = svc.MarkRead(context.Background(), 404, 9)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestListUnread_OnlyOwnUnread(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, &fakeUserRepo{}, nopLogger{})

	require.NoError(t, svc.Notify(context.Background(), 5, "first"))
	require.NoError(t, svc.Notify(context.Background(), 5, "second"))
	require.NoError(t, svc.Notify(context.Background(), 9, "other user"))
	_, err := svc.MarkRead(context.Background(), 1, 5)
	require.NoError(t, err)

	resp, err := svc.ListUnread(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "second", resp.Notifications[0].Message)
}

func TestNotifyAdmin_DeliversToAdmin(t *testing.T) {
	repo := &fakeNotificationRepo{}
	users := &fakeUserRepo{admin: &domain.User{ID: 1, Role: domain.RoleAdmin}}
	svc := NewService(repo, users, nopLogger{})

	require.NoError(t, svc.NotifyAdmin(context.Background(), "New restaurant pending approval"))

	resp, err := svc.ListUnread(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "New restaurant pending approval", resp.Notifications[0].Message)
}

func TestNotifyAdmin_NoAdminIsNoop(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, &fakeUserRepo{}, nopLogger{})

	assert.NoError(t, svc.NotifyAdmin(context.Background(), "New restaurant pending approval"))
	assert.Empty(t, repo.notifications)
}
