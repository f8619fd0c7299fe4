package models

import (
	"time"

	"github.com/thalibook/thalibook-api/internal/domain"
)

// Request модели

// CreateReviewRequest запрос на создание отзыва
type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Response модели

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurantId"`
	UserID       int64     `json:"userId"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ReviewListResponse ответ со списком отзывов и агрегатом
type ReviewListResponse struct {
	Reviews      []ReviewResponse `json:"reviews"`
	AvgRating    float64          `json:"avgRating"`
	TotalReviews int              `json:"totalReviews"`
}

// Методы конвертации

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review) *ReviewResponse {
	if r == nil {
		return nil
	}

	return &ReviewResponse{
		ID:           r.ID,
		RestaurantID: r.RestaurantID,
		UserID:       r.UserID,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
	}
}

// FromDomainReviewList конвертирует список domain моделей в DTO
func FromDomainReviewList(reviews []*domain.Review, avgRating float64, totalReviews int) *ReviewListResponse {
	result := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, *FromDomainReview(r))
	}

	return &ReviewListResponse{
		Reviews:      result,
		AvgRating:    avgRating,
		TotalReviews: totalReviews,
	}
}
