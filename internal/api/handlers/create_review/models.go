package create_review

import (
	"github.com/thalibook/thalibook-api/internal/service/reviews/models"
)

type CreateReviewRequest struct {
	RestaurantID int64  `json:"restaurantId"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

func (r *CreateReviewRequest) ToServiceRequest() *models.CreateReviewRequest {
	return &models.CreateReviewRequest{
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}
