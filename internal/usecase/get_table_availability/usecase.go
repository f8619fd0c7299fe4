package get_table_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/thalibook/thalibook-api/internal/domain"
	restaurantRepo "github.com/thalibook/thalibook-api/internal/infra/storage/restaurant"
)

// UseCase use case для получения доступности столов ресторана
type UseCase struct {
	restaurantRepo     RestaurantRepository
	bookingRepo        BookingRepository
	matchWindowMinutes int
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	restaurantRepo RestaurantRepository,
	bookingRepo BookingRepository,
	matchWindowMinutes int,
	logger Logger,
) *UseCase {
	if matchWindowMinutes <= 0 {
		matchWindowMinutes = domain.DefaultMatchWindowMinutes
	}

	return &UseCase{
		restaurantRepo:     restaurantRepo,
		bookingRepo:        bookingRepo,
		matchWindowMinutes: matchWindowMinutes,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// Execute выполняет use case получения доступности столов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTableAvailability: restaurant=%d, date=%s, time=%s",
		req.RestaurantID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetTableAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("GetTableAvailability: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем ресторан
	restaurant, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("GetTableAvailability: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("GetTableAvailability: failed to get restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	// 4. Получаем активные бронирования на дату.
	// Ошибка получения - это ошибка, а не "все столы свободны".
	filter := domain.RestaurantBookingsFilter{
		RestaurantID: req.RestaurantID,
		Date:         &req.Date,
	}

	bookings, err := uc.bookingRepo.GetByRestaurantWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetTableAvailability: failed to get bookings for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Разворачиваем инвентарь в синтетические столы
	tables := domain.SyntheticTables(restaurant.Tables)

	// 6. Вычисляем занятость в окне вокруг запрошенного времени
	occupied := domain.OccupiedTableIDs(bookings, req.Time, uc.matchWindowMinutes)

	// Бронирования со ссылками на столы вне текущего инвентаря пропускаем:
	// такое бывает после уменьшения инвентаря менеджером
	known := make(map[int64]bool, len(tables))
	for _, t := range tables {
		known[t.ID] = true
	}
	for id := range occupied {
		if !known[id] {
			uc.logger.Warn("GetTableAvailability: booking references unknown table id=%d for restaurant=%d", id, req.RestaurantID)
			delete(occupied, id)
		}
	}

	result := make([]TableAvailability, 0, len(tables))
	for _, t := range tables {
		result = append(result, TableAvailability{
			TableID:   t.ID,
			Size:      t.Size,
			Available: !occupied[t.ID],
		})
	}

	uc.logger.Info("GetTableAvailability: restaurant=%d has %d tables, %d occupied at %s",
		req.RestaurantID, len(result), len(occupied), req.Time)

	return &Response{
		RestaurantID: req.RestaurantID,
		Date:         req.Date,
		Time:         req.Time,
		Tables:       result,
	}, nil
}
