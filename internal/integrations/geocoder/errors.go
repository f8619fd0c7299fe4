package geocoder

import "errors"

var (
	// ErrAddressNotFound возвращается, когда геокодер не нашел адрес
	ErrAddressNotFound = errors.New("geocoder: address not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("geocoder client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("geocoder client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что геокодер недоступен и ресторан сохраняется без координат
	ErrServiceDegraded = errors.New("geocoder unavailable: graceful degradation applied")
)
