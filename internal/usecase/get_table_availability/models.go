package get_table_availability

import (
	"time"

	"github.com/thalibook/thalibook-api/pkg/types"
)

// Request модель запроса доступности столов
type Request struct {
	RestaurantID int64            // ID ресторана
	Date         time.Time        // Дата (без времени)
	Time         types.TimeString // Запрошенное время (например, "19:00")
}

// Response модель ответа со столами и их доступностью
type Response struct {
	RestaurantID int64              `json:"restaurantId"`
	Date         time.Time          `json:"date"`
	Time         types.TimeString   `json:"time"`
	Tables       []TableAvailability `json:"tables"`
}

// TableAvailability стол с признаком доступности на запрошенное время
type TableAvailability struct {
	TableID   int64 `json:"tableId"`
	Size      int   `json:"size"`
	Available bool  `json:"available"`
}
