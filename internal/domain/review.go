package domain

import "time"

// Review represents a customer review of a restaurant.
// Инвариант: не более одного отзыва на пару (пользователь, ресторан),
// закреплен уникальным индексом в БД.
type Review struct {
	ID           int64
	RestaurantID int64
	UserID       int64
	Rating       int // 1..5
	Comment      string
	CreatedAt    time.Time
}
