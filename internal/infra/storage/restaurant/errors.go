package restaurant

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("restaurant.repository: restaurant not found")

	// ErrDuplicateName возвращается при попытке создать ресторан с занятым именем
	ErrDuplicateName = errors.New("restaurant.repository: restaurant name already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("restaurant.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("restaurant.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("restaurant.repository: failed to scan row")

	// ErrEncodeJSON возвращается при ошибке сериализации jsonb колонок
	ErrEncodeJSON = errors.New("restaurant.repository: failed to encode json column")
)
