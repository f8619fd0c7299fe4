package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/thalibook/thalibook-api/internal/domain"
	restaurantRepo "github.com/thalibook/thalibook-api/internal/infra/storage/restaurant"
)

// UseCase use case для создания бронирования стола
type UseCase struct {
	bookingRepo        BookingRepository
	restaurantRepo     RestaurantRepository
	txManager          TransactionManager
	notifier           Notifier
	matchWindowMinutes int
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	restaurantRepo RestaurantRepository,
	txManager TransactionManager,
	notifier Notifier,
	matchWindowMinutes int,
	logger Logger,
) *UseCase {
	if matchWindowMinutes <= 0 {
		matchWindowMinutes = domain.DefaultMatchWindowMinutes
	}

	return &UseCase{
		bookingRepo:        bookingRepo,
		restaurantRepo:     restaurantRepo,
		txManager:          txManager,
		notifier:           notifier,
		matchWindowMinutes: matchWindowMinutes,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию, чтобы два параллельных запроса
// не получили один и тот же стол
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, restaurant=%d, date=%s, time=%s, partySize=%d",
		req.UserID, req.RestaurantID, req.Date.Format(domain.DateFormat), req.Time, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем ресторан
	restaurant, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("CreateBooking: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("CreateBooking: failed to get restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	// Неодобренный ресторан не виден клиентам
	if !restaurant.IsApproved {
		uc.logger.Warn("CreateBooking: restaurant id=%d is not approved", req.RestaurantID)
		return nil, ErrRestaurantNotFound
	}

	// 4. Проверяем часы работы
	if !restaurant.IsOpenAt(req.Date.Weekday(), req.Time) {
		uc.logger.Warn("CreateBooking: restaurant id=%d is closed at %s on %s",
			req.RestaurantID, req.Time, req.Date.Format(domain.DateFormat))
		return nil, ErrRestaurantClosed
	}

	// 5. Проверяем, что компания вообще помещается за какой-либо стол
	if restaurant.Tables.LargestSize() < req.PartySize {
		uc.logger.Warn("CreateBooking: restaurant id=%d has no table for party of %d", req.RestaurantID, req.PartySize)
		return nil, ErrPartyTooLarge
	}

	// Переменные для хранения результата
	var (
		result        *domain.Booking
		assignedTable domain.Table
	)

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем активные бронирования на дату с блокировкой (FOR UPDATE)
		filter := domain.RestaurantBookingsFilter{
			RestaurantID: req.RestaurantID,
			Date:         &req.Date,
		}

		bookings, err := uc.bookingRepo.GetByRestaurantWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Ищем наименьший свободный подходящий стол
		occupied := domain.OccupiedTableIDs(bookings, req.Time, uc.matchWindowMinutes)

		var found bool
		for _, t := range domain.SmallestSuitableTables(restaurant.Tables, req.PartySize) {
			if !occupied[t.ID] {
				assignedTable = t
				found = true
				break
			}
		}

		if !found {
			uc.logger.Warn("CreateBooking: no free table for restaurant=%d at %s", req.RestaurantID, req.Time)
			return ErrNoTableAvailable
		}

		uc.logger.Info("CreateBooking: assigning table id=%d (size=%d) for party of %d",
			assignedTable.ID, assignedTable.Size, req.PartySize)

		// 6.3. Сохраняем бронирование
		booking := &domain.Booking{
			UserID:       req.UserID,
			RestaurantID: req.RestaurantID,
			TableID:      assignedTable.ID,
			Date:         req.Date,
			Time:         req.Time,
			PartySize:    req.PartySize,
			Status:       domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 7. Уведомляем менеджера и гостя (best-effort, вне транзакции)
	managerMsg := fmt.Sprintf("New booking at %q for %s %s, party of %d",
		restaurant.Name, result.Date.Format(domain.DateFormat), result.Time, result.PartySize)
	if nerr := uc.notifier.Notify(ctx, restaurant.ManagerID, managerMsg); nerr != nil {
		uc.logger.Warn("CreateBooking: failed to notify manager for booking id=%d: %v", result.ID, nerr)
	}

	guestMsg := fmt.Sprintf("Your table at %q is booked for %s %s",
		restaurant.Name, result.Date.Format(domain.DateFormat), result.Time)
	if nerr := uc.notifier.Notify(ctx, result.UserID, guestMsg); nerr != nil {
		uc.logger.Warn("CreateBooking: failed to notify user for booking id=%d: %v", result.ID, nerr)
	}

	return &Response{
		ID:           result.ID,
		UserID:       result.UserID,
		RestaurantID: result.RestaurantID,
		TableID:      result.TableID,
		TableSize:    assignedTable.Size,
		Date:         result.Date,
		Time:         result.Time,
		PartySize:    result.PartySize,
		Status:       string(result.Status),
		CreatedAt:    result.CreatedAt,
	}, nil
}
