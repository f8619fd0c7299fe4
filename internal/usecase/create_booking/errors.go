package create_booking

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден или не одобрен
	ErrRestaurantNotFound = errors.New("create_booking: restaurant not found")

	// ErrRestaurantClosed возвращается, когда ресторан закрыт в запрошенное время
	ErrRestaurantClosed = errors.New("create_booking: restaurant is closed at this time")

	// ErrPartyTooLarge возвращается, когда в ресторане нет стола такого размера
	ErrPartyTooLarge = errors.New("create_booking: no table fits this party size")

	// ErrNoTableAvailable возвращается, когда все подходящие столы заняты
	ErrNoTableAvailable = errors.New("create_booking: no table available at this time")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
