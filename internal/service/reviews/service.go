package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/thalibook/thalibook-api/internal/domain"
	restaurantRepo "github.com/thalibook/thalibook-api/internal/infra/storage/restaurant"
	reviewRepo "github.com/thalibook/thalibook-api/internal/infra/storage/review"
	"github.com/thalibook/thalibook-api/internal/service/reviews/models"
)

// Service сервис для работы с отзывами
type Service struct {
	reviewRepo     ReviewRepository
	restaurantRepo RestaurantRepository
	txManager      TransactionManager
	logger         Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(
	reviewRepo ReviewRepository,
	restaurantRepo RestaurantRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reviewRepo:     reviewRepo,
		restaurantRepo: restaurantRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// Create создает отзыв на ресторан.
// Пользователь может оставить не более одного отзыва на ресторан.
// Отзыв и денормализованный рейтинг ресторана обновляются в одной
// транзакции, чтобы агрегат не разъезжался с отзывами.
func (s *Service) Create(ctx context.Context, restaurantID, userID int64, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Create: creating review for restaurant=%d by user=%d, rating=%d", restaurantID, userID, req.Rating)

	if err := validateReview(req); err != nil {
		s.logger.Warn("Create: invalid review from user=%d: %v", userID, err)
		return nil, err
	}

	// Проверяем существование ресторана
	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("Create: restaurant id=%d not found", restaurantID)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("Create: repository error for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	// Предварительная проверка на повторный отзыв, чтобы не открывать транзакцию
	// впустую. Авторитетна проверка уникальным индексом внутри транзакции.
	exists, err := s.reviewRepo.ExistsByUserAndRestaurant(ctx, userID, restaurantID)
	if err != nil {
		s.logger.Error("Create: repository error for user=%d, restaurant=%d: %v", userID, restaurantID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	if exists {
		s.logger.Warn("Create: user=%d already reviewed restaurant=%d", userID, restaurantID)
		return nil, ErrAlreadyReviewed
	}

	review := &domain.Review{
		RestaurantID: restaurantID,
		UserID:       userID,
		Rating:       req.Rating,
		Comment:      strings.TrimSpace(req.Comment),
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Создаем отзыв (уникальный индекс отсекает повторные)
		if _, err := s.reviewRepo.Create(ctx, review); err != nil {
			return err
		}

		// 2. Пересчитываем агрегат по отзывам
		summary, err := s.reviewRepo.SummaryForRestaurant(ctx, restaurantID)
		if err != nil {
			return err
		}

		// 3. Обновляем денормализованный рейтинг ресторана
		return s.restaurantRepo.SetRating(ctx, restaurantID, summary.Average, int(summary.Total))
	})

	if err != nil {
		if errors.Is(err, reviewRepo.ErrAlreadyReviewed) {
			s.logger.Warn("Create: user=%d already reviewed restaurant=%d", userID, restaurantID)
			return nil, ErrAlreadyReviewed
		}
		s.logger.Error("Create: transaction failed for restaurant=%d, user=%d: %v", restaurantID, userID, err)
		return nil, fmt.Errorf("%w: Create - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created review id=%d for restaurant=%d", review.ID, restaurantID)
	return models.FromDomainReview(review), nil
}

// ListByRestaurant получает отзывы ресторана вместе с агрегатом
func (s *Service) ListByRestaurant(ctx context.Context, restaurantID int64) (*models.ReviewListResponse, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("ListByRestaurant: repository error for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: ListByRestaurant - repository error: %v", ErrInternal, err)
	}

	reviews, err := s.reviewRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		s.logger.Error("ListByRestaurant: repository error for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: ListByRestaurant - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReviewList(reviews, restaurant.AvgRating, restaurant.TotalReviews), nil
}

func validateReview(req *models.CreateReviewRequest) error {
	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}
	if len(req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}
	return nil
}
