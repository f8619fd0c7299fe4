package create_review

import (
	"context"

	reviewsService "github.com/thalibook/thalibook-api/internal/service/reviews"
	"github.com/thalibook/thalibook-api/internal/service/reviews/models"
)

var _ ReviewService = (*reviewsService.Service)(nil)

type ReviewService interface {
	Create(ctx context.Context, restaurantID, userID int64, req *models.CreateReviewRequest) (*models.ReviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
