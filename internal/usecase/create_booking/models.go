package create_booking

import (
	"time"

	"github.com/thalibook/thalibook-api/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID       int64            // ID пользователя
	RestaurantID int64            // ID ресторана
	Date         time.Time        // Дата бронирования (без времени)
	Time         types.TimeString // Время начала (например, "19:00")
	PartySize    int              // Количество гостей
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64            `json:"id"`
	UserID       int64            `json:"userId"`
	RestaurantID int64            `json:"restaurantId"`
	TableID      int64            `json:"tableId"`
	TableSize    int              `json:"tableSize"`
	Date         time.Time        `json:"date"`
	Time         types.TimeString `json:"time"`
	PartySize    int              `json:"partySize"`
	Status       string           `json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
}
