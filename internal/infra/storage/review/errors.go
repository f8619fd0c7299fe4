package review

import "errors"

var (
	// ErrAlreadyReviewed возвращается при повторном отзыве пользователя на тот же ресторан
	ErrAlreadyReviewed = errors.New("review.repository: user already reviewed this restaurant")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("review.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("review.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("review.repository: failed to scan row")
)
