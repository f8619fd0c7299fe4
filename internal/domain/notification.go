package domain

import "time"

// Notification represents an in-app notification for a user.
// Доставка по модели опроса: клиент периодически запрашивает непрочитанные.
type Notification struct {
	ID        int64
	UserID    int64
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
