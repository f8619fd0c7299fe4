package restaurants

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thalibook/thalibook-api/internal/domain"
	restaurantRepo "github.com/thalibook/thalibook-api/internal/infra/storage/restaurant"
	"github.com/thalibook/thalibook-api/internal/integrations/geocoder"
	"github.com/thalibook/thalibook-api/internal/service/restaurants/models"
	"github.com/thalibook/thalibook-api/pkg/types"
)

var validCostRatings = map[string]bool{"$": true, "$$": true, "$$$": true}

// Service сервис для работы с ресторанами
type Service struct {
	restaurantRepo RestaurantRepository
	bookingRepo    BookingRepository
	geocoder       GeocoderClient
	notifier       Notifier
	logger         Logger
}

// NewService создает новый экземпляр сервиса ресторанов
func NewService(
	restaurantRepo RestaurantRepository,
	bookingRepo BookingRepository,
	geocoderClient GeocoderClient,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		restaurantRepo: restaurantRepo,
		bookingRepo:    bookingRepo,
		geocoder:       geocoderClient,
		notifier:       notifier,
		logger:         logger,
	}
}

// Create создает новый ресторан.
// Ресторан создается неодобренным и не попадает в поиск до одобрения
// администратором. Координаты заполняются через геокодер best-effort:
// недоступность геокодера не блокирует создание.
func (s *Service) Create(ctx context.Context, managerID int64, req *models.CreateRestaurantRequest) (*models.RestaurantResponse, error) {
	s.logger.Info("Create: creating restaurant name=%q by manager=%d", req.Name, managerID)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: invalid request from manager=%d: %v", managerID, err)
		return nil, err
	}

	restaurant := req.ToDomainRestaurant(managerID)
	restaurant.IsApproved = false

	// 1. Геокодируем адрес (best-effort)
	s.resolveCoordinates(ctx, restaurant)

	// 2. Сохраняем ресторан
	created, err := s.restaurantRepo.Create(ctx, restaurant)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrDuplicateName) {
			s.logger.Warn("Create: restaurant name=%q already taken", req.Name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Create: repository error for name=%q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	// 3. Уведомляем администратора о новой заявке на одобрение
	message := fmt.Sprintf("New restaurant %q is awaiting approval", created.Name)
	if err := s.notifier.NotifyAdmin(ctx, message); err != nil {
		// Уведомление не критично для создания ресторана
		s.logger.Warn("Create: failed to notify admin about restaurant id=%d: %v", created.ID, err)
	}

	s.logger.Info("Create: created restaurant id=%d, name=%q", created.ID, created.Name)
	return models.FromDomainRestaurant(created), nil
}

// GetDetails получает детали ресторана вместе с загрузкой на сегодня
func (s *Service) GetDetails(ctx context.Context, id int64, today time.Time) (*models.RestaurantDetailsResponse, error) {
	restaurant, err := s.getRestaurant(ctx, id, "GetDetails")
	if err != nil {
		return nil, err
	}

	bookingsToday, err := s.bookingRepo.CountForDate(ctx, id, today)
	if err != nil {
		s.logger.Error("GetDetails: failed to count bookings for restaurant=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetDetails - repository error: %v", ErrInternal, err)
	}

	return &models.RestaurantDetailsResponse{
		Restaurant:    *models.FromDomainRestaurant(restaurant),
		BookingsToday: bookingsToday,
	}, nil
}

// Update обновляет данные ресторана.
// Менеджер может редактировать только свои рестораны, администратор - любые.
func (s *Service) Update(ctx context.Context, id, userID int64, role domain.Role, req *models.UpdateRestaurantRequest) (*models.RestaurantResponse, error) {
	s.logger.Info("Update: updating restaurant id=%d by user=%d", id, userID)

	restaurant, err := s.getRestaurant(ctx, id, "Update")
	if err != nil {
		return nil, err
	}

	if err := s.checkOwnership(restaurant, userID, role); err != nil {
		s.logger.Warn("Update: access denied for user=%d to restaurant id=%d", userID, id)
		return nil, err
	}

	applyUpdate(restaurant, req)

	if err := validateHours(restaurant.Hours); err != nil {
		s.logger.Warn("Update: invalid hours for restaurant id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validateTables(restaurant.Tables); err != nil {
		s.logger.Warn("Update: invalid tables for restaurant id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.restaurantRepo.Update(ctx, restaurant); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("Update: repository error for restaurant id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated restaurant id=%d", id)
	return models.FromDomainRestaurant(restaurant), nil
}

// Delete удаляет ресторан.
// Менеджер может удалять только свои рестораны, администратор - любые.
func (s *Service) Delete(ctx context.Context, id, userID int64, role domain.Role) error {
	s.logger.Info("Delete: deleting restaurant id=%d by user=%d", id, userID)

	restaurant, err := s.getRestaurant(ctx, id, "Delete")
	if err != nil {
		return err
	}

	if err := s.checkOwnership(restaurant, userID, role); err != nil {
		s.logger.Warn("Delete: access denied for user=%d to restaurant id=%d", userID, id)
		return err
	}

	if err := s.restaurantRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			return ErrRestaurantNotFound
		}
		s.logger.Error("Delete: repository error for restaurant id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted restaurant id=%d", id)
	return nil
}

// ListByManager получает рестораны менеджера (включая неодобренные)
func (s *Service) ListByManager(ctx context.Context, managerID int64) (*models.RestaurantListResponse, error) {
	restaurants, err := s.restaurantRepo.ListByManager(ctx, managerID)
	if err != nil {
		s.logger.Error("ListByManager: repository error for manager=%d: %v", managerID, err)
		return nil, fmt.Errorf("%w: ListByManager - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRestaurantList(restaurants), nil
}

// ListPending получает рестораны, ожидающие одобрения
func (s *Service) ListPending(ctx context.Context) (*models.RestaurantListResponse, error) {
	restaurants, err := s.restaurantRepo.ListPending(ctx)
	if err != nil {
		s.logger.Error("ListPending: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPending - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRestaurantList(restaurants), nil
}

// ListAll получает все рестораны (для администратора)
func (s *Service) ListAll(ctx context.Context) (*models.RestaurantListResponse, error) {
	restaurants, err := s.restaurantRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRestaurantList(restaurants), nil
}

// Вспомогательные методы

// resolveCoordinates заполняет координаты ресторана через геокодер.
// Сначала пробует полный адрес, затем zip-код. Любая ошибка геокодера
// оставляет координаты пустыми и не блокирует сохранение.
func (s *Service) resolveCoordinates(ctx context.Context, restaurant *domain.Restaurant) {
	location, err := s.geocoder.GeocodeWithGracefulDegradation(ctx, restaurant.FullAddress())
	if errors.Is(err, geocoder.ErrAddressNotFound) && restaurant.ZipCode != "" {
		// Полный адрес не распознан - пробуем по zip-коду
		location, err = s.geocoder.GeocodeWithGracefulDegradation(ctx, restaurant.ZipCode+" "+restaurant.State)
	}

	if err != nil {
		// Ресторан сохраняется без координат, их можно добавить позже
		s.logger.Warn("resolveCoordinates: restaurant name=%q saved without coordinates: %v", restaurant.Name, err)
		return
	}

	restaurant.Latitude = &location.Latitude
	restaurant.Longitude = &location.Longitude
}

func (s *Service) getRestaurant(ctx context.Context, id int64, op string) (*domain.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("%s: restaurant id=%d not found", op, id)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("%s: repository error for restaurant id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return restaurant, nil
}

// checkOwnership проверяет, что пользователь владеет рестораном или является администратором
func (s *Service) checkOwnership(restaurant *domain.Restaurant, userID int64, role domain.Role) error {
	if role == domain.RoleAdmin {
		return nil
	}
	if restaurant.ManagerID == userID {
		return nil
	}
	return ErrAccessDenied
}

func applyUpdate(restaurant *domain.Restaurant, req *models.UpdateRestaurantRequest) {
	if req.Description != nil {
		restaurant.Description = *req.Description
	}
	if req.Cuisine != nil {
		restaurant.Cuisine = *req.Cuisine
	}
	if req.CostRating != nil {
		restaurant.CostRating = *req.CostRating
	}
	if req.Phone != nil {
		restaurant.Phone = *req.Phone
	}
	if req.Hours != nil {
		restaurant.Hours = *req.Hours
	}
	if req.Tables != nil {
		restaurant.Tables = domain.TableInventory(*req.Tables)
	}
	if req.PhotoURL != nil {
		restaurant.PhotoURL = req.PhotoURL
	}
}

func validateCreateRequest(req *models.CreateRestaurantRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Address) == "" || strings.TrimSpace(req.City) == "" {
		return fmt.Errorf("%w: address and city are required", ErrInvalidInput)
	}
	if req.CostRating != "" && !validCostRatings[req.CostRating] {
		return fmt.Errorf("%w: cost rating must be $, $$ or $$$", ErrInvalidInput)
	}
	if err := validateHours(req.Hours); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validateTables(domain.TableInventory(req.Tables)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// validateHours проверяет формат часов работы: "HH:MM-HH:MM" на каждый день
func validateHours(hours map[string]string) error {
	for day, interval := range hours {
		parts := strings.SplitN(interval, "-", 2)
		if len(parts) != 2 {
			return fmt.Errorf("%v: %s: expected \"HH:MM-HH:MM\", got %q", models.ErrInvalidHours, day, interval)
		}

		open, err := types.NewTimeStringFromString(strings.TrimSpace(parts[0]))
		if err != nil {
			return fmt.Errorf("%v: %s: %v", models.ErrInvalidHours, day, err)
		}
		close, err := types.NewTimeStringFromString(strings.TrimSpace(parts[1]))
		if err != nil {
			return fmt.Errorf("%v: %s: %v", models.ErrInvalidHours, day, err)
		}

		if !open.IsBefore(close) {
			return fmt.Errorf("%v: %s: opening time must be before closing time", models.ErrInvalidHours, day)
		}
	}
	return nil
}

func validateTables(tables domain.TableInventory) error {
	for size, count := range tables {
		if size <= 0 {
			return fmt.Errorf("table size must be positive, got %d", size)
		}
		if count <= 0 {
			return fmt.Errorf("table count must be positive for size %d, got %d", size, count)
		}
	}
	return nil
}
