package admin

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrAlreadyApproved возвращается при повторном одобрении ресторана
	ErrAlreadyApproved = errors.New("restaurant already approved")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
