package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/thalibook/thalibook-api/internal/domain"
	bookingRepo "github.com/thalibook/thalibook-api/internal/infra/storage/booking"
	restaurantRepo "github.com/thalibook/thalibook-api/internal/infra/storage/restaurant"
	"github.com/thalibook/thalibook-api/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo    BookingRepository
	restaurantRepo RestaurantRepository
	notifier       Notifier
	logger         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	restaurantRepo RestaurantRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		restaurantRepo: restaurantRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - клиент видит только своё бронирование,
// менеджер - бронирования своих ресторанов, администратор - любые
func (s *Service) GetByID(ctx context.Context, id, userID int64, role domain.Role) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getBooking(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if err := s.checkReadAccess(ctx, booking, userID, role); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// ListForUser получает бронирования в зависимости от роли:
// клиент видит свои, менеджер - бронирования своих ресторанов,
// администратор - все
func (s *Service) ListForUser(ctx context.Context, userID int64, role domain.Role) (*models.BookingListResponse, error) {
	s.logger.Info("ListForUser: fetching bookings for user=%d, role=%s", userID, role)

	var (
		bookings []*domain.Booking
		err      error
	)

	switch role {
	case domain.RoleManager:
		bookings, err = s.bookingRepo.GetByManagerID(ctx, userID)
	case domain.RoleAdmin:
		bookings, err = s.bookingRepo.GetAll(ctx)
	default:
		bookings, err = s.bookingRepo.GetByUserID(ctx, userID)
	}

	if err != nil {
		s.logger.Error("ListForUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListForUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForUser: fetched %d bookings for user=%d", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// GetRestaurantBookings получает бронирования ресторана с фильтрацией
// Доступно менеджеру ресторана и администратору
func (s *Service) GetRestaurantBookings(ctx context.Context, req *models.GetRestaurantBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetRestaurantBookings: fetching bookings for restaurant=%d, user=%d", req.RestaurantID, req.UserID)

	if err := s.checkManagerAccess(ctx, req.RestaurantID, req.UserID, req.Role); err != nil {
		s.logger.Warn("GetRestaurantBookings: access denied for user=%d to restaurant=%d", req.UserID, req.RestaurantID)
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetRestaurantBookings: invalid filter for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByRestaurantWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetRestaurantBookings: repository error for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: GetRestaurantBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRestaurantBookings: fetched %d bookings for restaurant=%d", len(bookings), req.RestaurantID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование.
// Клиент может отменить только своё бронирование. Менеджеру отмена
// запрещена - гостевой бронью распоряжается гость. Администратор
// может отменить любое бронирование.
func (s *Service) Cancel(ctx context.Context, bookingID, userID int64, role domain.Role) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, userID)

	booking, err := s.getBooking(ctx, bookingID, "Cancel")
	if err != nil {
		return err
	}

	switch {
	case role == domain.RoleAdmin:
		// Администратор может отменить любое бронирование
	case booking.UserID == userID && role != domain.RoleManager:
		// Владелец бронирования
	default:
		s.logger.Warn("Cancel: access denied for user=%d (role=%s) to cancel booking id=%d", userID, role, bookingID)
		return ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.updateStatus(ctx, bookingID, domain.StatusCancelled, "Cancel"); err != nil {
		return err
	}

	// Уведомляем менеджера ресторана об отмене
	if restaurant, rerr := s.restaurantRepo.GetByID(ctx, booking.RestaurantID); rerr == nil {
		message := fmt.Sprintf("Booking #%d at %q for %s %s was cancelled",
			bookingID, restaurant.Name, booking.Date.Format(domain.DateFormat), booking.Time)
		if nerr := s.notifier.Notify(ctx, restaurant.ManagerID, message); nerr != nil {
			s.logger.Warn("Cancel: failed to notify manager about booking id=%d: %v", bookingID, nerr)
		}
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// Confirm подтверждает ожидающее бронирование.
// Доступно менеджеру ресторана и администратору.
func (s *Service) Confirm(ctx context.Context, bookingID, userID int64, role domain.Role) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%d by user=%d", bookingID, userID)

	booking, err := s.getBooking(ctx, bookingID, "Confirm")
	if err != nil {
		return nil, err
	}

	if err := s.checkManagerAccess(ctx, booking.RestaurantID, userID, role); err != nil {
		s.logger.Warn("Confirm: access denied for user=%d to booking id=%d", userID, bookingID)
		return nil, err
	}

	if !booking.CanBeConfirmed() {
		s.logger.Warn("Confirm: booking id=%d cannot be confirmed, status=%s", bookingID, booking.Status)
		return nil, ErrCannotConfirm
	}

	if err := s.updateStatus(ctx, bookingID, domain.StatusConfirmed, "Confirm"); err != nil {
		return nil, err
	}

	booking.Status = domain.StatusConfirmed

	// Уведомляем гостя о подтверждении
	message := fmt.Sprintf("Your booking #%d for %s %s is confirmed",
		bookingID, booking.Date.Format(domain.DateFormat), booking.Time)
	if nerr := s.notifier.Notify(ctx, booking.UserID, message); nerr != nil {
		s.logger.Warn("Confirm: failed to notify user about booking id=%d: %v", bookingID, nerr)
	}

	s.logger.Info("Confirm: successfully confirmed booking id=%d", bookingID)
	return models.FromDomainBooking(booking), nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, id int64, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return booking, nil
}

func (s *Service) updateStatus(ctx context.Context, id int64, status domain.BookingStatus, op string) error {
	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return nil
}

// checkReadAccess проверяет, что пользователь имеет доступ к бронированию
func (s *Service) checkReadAccess(ctx context.Context, booking *domain.Booking, userID int64, role domain.Role) error {
	if booking.UserID == userID || role == domain.RoleAdmin {
		return nil
	}

	if role == domain.RoleManager {
		return s.checkManagerAccess(ctx, booking.RestaurantID, userID, role)
	}

	return ErrAccessDenied
}

// checkManagerAccess проверяет, что пользователь управляет рестораном
// или является администратором
func (s *Service) checkManagerAccess(ctx context.Context, restaurantID, userID int64, role domain.Role) error {
	if role == domain.RoleAdmin {
		return nil
	}

	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			return ErrAccessDenied
		}
		s.logger.Error("checkManagerAccess: repository error for restaurant=%d: %v", restaurantID, err)
		return fmt.Errorf("%w: checkManagerAccess - repository error: %v", ErrInternal, err)
	}

	if restaurant.ManagerID != userID {
		return ErrAccessDenied
	}

	return nil
}
