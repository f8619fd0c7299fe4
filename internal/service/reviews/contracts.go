package reviews

import (
	"context"

	"github.com/thalibook/thalibook-api/internal/domain"
	reviewRepo "github.com/thalibook/thalibook-api/internal/infra/storage/review"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ExistsByUserAndRestaurant(ctx context.Context, userID, restaurantID int64) (bool, error)
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]*domain.Review, error)
	SummaryForRestaurant(ctx context.Context, restaurantID int64) (reviewRepo.RatingSummary, error)
}

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
	SetRating(ctx context.Context, id int64, avgRating float64, totalReviews int) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
