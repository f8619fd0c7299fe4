package models

// PlatformStats сводная статистика платформы
type PlatformStats struct {
	TotalUsers          int64 `json:"totalUsers"`
	TotalRestaurants    int64 `json:"totalRestaurants"`
	PendingRestaurants  int64 `json:"pendingRestaurants"`
	ApprovedRestaurants int64 `json:"approvedRestaurants"`
	TotalBookings       int64 `json:"totalBookings"`
	TotalReviews        int64 `json:"totalReviews"`
}

// BookingAnalytics разбивка бронирований по статусам
type BookingAnalytics struct {
	TotalBookings     int64 `json:"totalBookings"`
	PendingBookings   int64 `json:"pendingBookings"`
	ConfirmedBookings int64 `json:"confirmedBookings"`
	CancelledBookings int64 `json:"cancelledBookings"`
}

// TopRestaurantEntry ресторан в рейтинге по количеству бронирований
type TopRestaurantEntry struct {
	RestaurantID int64  `json:"restaurantId"`
	Name         string `json:"name"`
	City         string `json:"city"`
	Bookings     int64  `json:"bookings"`
}

// TopRestaurantsResponse ответ с рейтингом ресторанов
type TopRestaurantsResponse struct {
	Restaurants []TopRestaurantEntry `json:"restaurants"`
}
