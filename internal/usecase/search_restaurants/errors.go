package search_restaurants

import "errors"

var (
	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("invalid search date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
