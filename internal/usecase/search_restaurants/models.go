package search_restaurants

import (
	"time"

	"github.com/thalibook/thalibook-api/internal/domain"
	"github.com/thalibook/thalibook-api/pkg/types"
)

// Request модель поискового запроса
type Request struct {
	Date      time.Time        // Дата бронирования
	Time      types.TimeString // Желаемое время (например, "19:00")
	PartySize int              // Количество гостей
	Location  string           // Город или zip-код (опционально)
}

// Response модель ответа с подходящими ресторанами
type Response struct {
	Restaurants []SearchResult `json:"restaurants"`
}

// SearchResult ресторан в поисковой выдаче
type SearchResult struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	Cuisine      string             `json:"cuisine"`
	CostRating   string             `json:"costRating"`
	City         string             `json:"city"`
	State        string             `json:"state"`
	ZipCode      string             `json:"zip"`
	Latitude     *float64           `json:"latitude,omitempty"`
	Longitude    *float64           `json:"longitude,omitempty"`
	PhotoURL     *string            `json:"photoUrl,omitempty"`
	AvgRating    float64            `json:"avgRating"`
	TotalReviews int                `json:"totalReviews"`
	BookedToday  int                `json:"bookedToday"`

	// FreeTables количество свободных подходящих столов на запрошенное время
	FreeTables int `json:"freeTables"`

	// NearbySlots свободные получасовые слоты вокруг запрошенного времени
	NearbySlots []types.TimeString `json:"nearbySlots"`
}

func toSearchResult(r *domain.Restaurant) SearchResult {
	return SearchResult{
		ID:           r.ID,
		Name:         r.Name,
		Cuisine:      r.Cuisine,
		CostRating:   r.CostRating,
		City:         r.City,
		State:        r.State,
		ZipCode:      r.ZipCode,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		PhotoURL:     r.PhotoURL,
		AvgRating:    r.AvgRating,
		TotalReviews: r.TotalReviews,
	}
}
