package restaurant_reviews

import (
	"context"

	reviewsService "github.com/thalibook/thalibook-api/internal/service/reviews"
	"github.com/thalibook/thalibook-api/internal/service/reviews/models"
)

var _ ReviewService = (*reviewsService.Service)(nil)

type ReviewService interface {
	ListByRestaurant(ctx context.Context, restaurantID int64) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
