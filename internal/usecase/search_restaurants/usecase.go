package search_restaurants

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/thalibook/thalibook-api/internal/domain"
	"github.com/thalibook/thalibook-api/pkg/types"
)

// UseCase use case поиска ресторанов со свободными столами
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

// Execute выполняет поиск ресторанов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchRestaurants: date=%s, time=%s, partySize=%d, location=%q",
		req.Date.Format(domain.DateFormat), req.Time, req.PartySize, req.Location)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SearchRestaurants: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("SearchRestaurants: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем одобренные рестораны с учетом локации
	filter := buildLocationFilter(strings.TrimSpace(req.Location))

	candidates, err := uc.restaurantRepo.ListApproved(ctx, filter)
	if err != nil {
		uc.logger.Error("SearchRestaurants: failed to list restaurants: %v", err)
		return nil, fmt.Errorf("%w: failed to list restaurants: %v", ErrInternal, err)
	}

	uc.logger.Info("SearchRestaurants: %d candidate restaurants for location=%q", len(candidates), req.Location)

	// 4. Фильтруем по часам работы и наличию свободных столов
	weekday := req.Date.Weekday()
	results := make([]SearchResult, 0, len(candidates))

	for _, restaurant := range candidates {
		// Ресторан должен работать в запрошенное время
		if !restaurant.IsOpenAt(weekday, req.Time) {
			continue
		}

		bookings, err := uc.bookingRepo.GetByRestaurantWithFilter(ctx, domain.RestaurantBookingsFilter{
			RestaurantID: restaurant.ID,
			Date:         &req.Date,
		})
		if err != nil {
			uc.logger.Error("SearchRestaurants: failed to get bookings for restaurant=%d: %v", restaurant.ID, err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		freeTables := countFreeSuitableTables(restaurant.Tables, bookings, req.Time, uc.matchWindowMinutes, req.PartySize)
		if freeTables == 0 {
			continue
		}

		result := toSearchResult(restaurant)
		result.FreeTables = freeTables
		result.BookedToday = len(bookings)
		result.NearbySlots = uc.availableNearbySlots(restaurant, bookings, req)

		results = append(results, result)
	}

	// 5. Детерминированный порядок: больше свободных столов раньше,
	// при равенстве - по названию
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].FreeTables != results[j].FreeTables {
			return results[i].FreeTables > results[j].FreeTables
		}
		return results[i].Name < results[j].Name
	})

	uc.logger.Info("SearchRestaurants: %d restaurants matched", len(results))

	return &Response{Restaurants: results}, nil
}

// availableNearbySlots возвращает получасовые слоты вокруг запрошенного
// времени, в которые у ресторана остаётся подходящий свободный стол.
// Слот за пределами часов работы не предлагается.
func (uc *UseCase) availableNearbySlots(restaurant *domain.Restaurant, bookings []*domain.Booking, req *Request) []types.TimeString {
	weekday := req.Date.Weekday()
	slots := make([]types.TimeString, 0, 2*domain.SlotNeighborRadius+1)

	for _, slot := range nearbySlotCandidates(req.Time) {
		if !restaurant.IsOpenAt(weekday, slot) {
			continue
		}
		if countFreeSuitableTables(restaurant.Tables, bookings, slot, uc.matchWindowMinutes, req.PartySize) == 0 {
			continue
		}
		slots = append(slots, slot)
	}

	return slots
}
