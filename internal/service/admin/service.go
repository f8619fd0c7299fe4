package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/thalibook/thalibook-api/internal/domain"
	restaurantRepo "github.com/thalibook/thalibook-api/internal/infra/storage/restaurant"
	"github.com/thalibook/thalibook-api/internal/service/admin/models"
)

// Service сервис административных операций
type Service struct {
	restaurantRepo RestaurantRepository
	bookingRepo    BookingRepository
	userRepo       UserRepository
	reviewRepo     ReviewRepository
	notifier       Notifier
	logger         Logger
}

// NewService создает новый экземпляр административного сервиса
func NewService(
	restaurantRepo RestaurantRepository,
	bookingRepo BookingRepository,
	userRepo UserRepository,
	reviewRepo ReviewRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		restaurantRepo: restaurantRepo,
		bookingRepo:    bookingRepo,
		userRepo:       userRepo,
		reviewRepo:     reviewRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

// ApproveRestaurant одобряет ресторан и уведомляет его менеджера.
// Одобренный ресторан попадает в публичный поиск.
func (s *Service) ApproveRestaurant(ctx context.Context, restaurantID int64) error {
	s.logger.Info("ApproveRestaurant: approving restaurant id=%d", restaurantID)

	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("ApproveRestaurant: restaurant id=%d not found", restaurantID)
			return ErrRestaurantNotFound
		}
		s.logger.Error("ApproveRestaurant: repository error for restaurant=%d: %v", restaurantID, err)
		return fmt.Errorf("%w: ApproveRestaurant - repository error: %v", ErrInternal, err)
	}

	if restaurant.IsApproved {
		s.logger.Warn("ApproveRestaurant: restaurant id=%d already approved", restaurantID)
		return ErrAlreadyApproved
	}

	if err := s.restaurantRepo.SetApproved(ctx, restaurantID); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			return ErrRestaurantNotFound
		}
		s.logger.Error("ApproveRestaurant: repository error for restaurant=%d: %v", restaurantID, err)
		return fmt.Errorf("%w: ApproveRestaurant - repository error: %v", ErrInternal, err)
	}

	message := fmt.Sprintf("Your restaurant %q has been approved and is now visible in search", restaurant.Name)
	if nerr := s.notifier.Notify(ctx, restaurant.ManagerID, message); nerr != nil {
		s.logger.Warn("ApproveRestaurant: failed to notify manager about restaurant id=%d: %v", restaurantID, nerr)
	}

	s.logger.Info("ApproveRestaurant: approved restaurant id=%d", restaurantID)
	return nil
}

// Stats собирает сводную статистику платформы
func (s *Service) Stats(ctx context.Context) (*models.PlatformStats, error) {
	s.logger.Info("Stats: collecting platform statistics")

	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, s.statsError("users", err)
	}

	totalRestaurants, err := s.restaurantRepo.Count(ctx)
	if err != nil {
		return nil, s.statsError("restaurants", err)
	}

	pendingRestaurants, err := s.restaurantRepo.CountByApproved(ctx, false)
	if err != nil {
		return nil, s.statsError("pending restaurants", err)
	}

	totalBookings, err := s.bookingRepo.Count(ctx)
	if err != nil {
		return nil, s.statsError("bookings", err)
	}

	totalReviews, err := s.reviewRepo.Count(ctx)
	if err != nil {
		return nil, s.statsError("reviews", err)
	}

	return &models.PlatformStats{
		TotalUsers:          totalUsers,
		TotalRestaurants:    totalRestaurants,
		PendingRestaurants:  pendingRestaurants,
		ApprovedRestaurants: totalRestaurants - pendingRestaurants,
		TotalBookings:       totalBookings,
		TotalReviews:        totalReviews,
	}, nil
}

// Analytics собирает разбивку бронирований по статусам
func (s *Service) Analytics(ctx context.Context) (*models.BookingAnalytics, error) {
	s.logger.Info("Analytics: collecting booking analytics")

	total, err := s.bookingRepo.Count(ctx)
	if err != nil {
		return nil, s.statsError("bookings", err)
	}

	pending, err := s.bookingRepo.CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, s.statsError("pending bookings", err)
	}

	confirmed, err := s.bookingRepo.CountByStatus(ctx, domain.StatusConfirmed)
	if err != nil {
		return nil, s.statsError("confirmed bookings", err)
	}

	cancelled, err := s.bookingRepo.CountByStatus(ctx, domain.StatusCancelled)
	if err != nil {
		return nil, s.statsError("cancelled bookings", err)
	}

	return &models.BookingAnalytics{
		TotalBookings:     total,
		PendingBookings:   pending,
		ConfirmedBookings: confirmed,
		CancelledBookings: cancelled,
	}, nil
}

// TopRestaurants возвращает рестораны с наибольшим количеством бронирований
func (s *Service) TopRestaurants(ctx context.Context) (*models.TopRestaurantsResponse, error) {
	s.logger.Info("TopRestaurants: collecting top restaurants")

	top, err := s.bookingRepo.TopRestaurants(ctx, domain.TopRestaurantsLimit)
	if err != nil {
		s.logger.Error("TopRestaurants: repository error: %v", err)
		return nil, fmt.Errorf("%w: TopRestaurants - repository error: %v", ErrInternal, err)
	}

	entries := make([]models.TopRestaurantEntry, 0, len(top))
	for _, t := range top {
		entry := models.TopRestaurantEntry{
			RestaurantID: t.RestaurantID,
			Bookings:     t.Bookings,
		}

		// Удаленный ресторан остается в рейтинге без названия
		if restaurant, rerr := s.restaurantRepo.GetByID(ctx, t.RestaurantID); rerr == nil {
			entry.Name = restaurant.Name
			entry.City = restaurant.City
		} else if !errors.Is(rerr, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Error("TopRestaurants: repository error for restaurant=%d: %v", t.RestaurantID, rerr)
			return nil, fmt.Errorf("%w: TopRestaurants - repository error: %v", ErrInternal, rerr)
		}

		entries = append(entries, entry)
	}

	return &models.TopRestaurantsResponse{Restaurants: entries}, nil
}

func (s *Service) statsError(what string, err error) error {
	s.logger.Error("failed to count %s: %v", what, err)
	return fmt.Errorf("%w: failed to count %s: %v", ErrInternal, what, err)
}
