package models

import (
	"errors"
	"strings"
	"time"

	"github.com/thalibook/thalibook-api/internal/domain"
)

var (
	// ErrInvalidHours возвращается при некорректном формате часов работы
	ErrInvalidHours = errors.New("invalid hours format")
)

// Request модели

// CreateRestaurantRequest запрос на создание ресторана
type CreateRestaurantRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Cuisine     string            `json:"cuisine"`
	CostRating  string            `json:"costRating"`
	Address     string            `json:"address"`
	City        string            `json:"city"`
	State       string            `json:"state"`
	ZipCode     string            `json:"zip"`
	Phone       string            `json:"phone"`
	Hours       map[string]string `json:"hours"`
	Tables      map[int]int       `json:"tables"`
	PhotoURL    *string           `json:"photoUrl,omitempty"`
}

// UpdateRestaurantRequest запрос на обновление ресторана.
// nil поле означает "не менять".
type UpdateRestaurantRequest struct {
	Description *string            `json:"description,omitempty"`
	Cuisine     *string            `json:"cuisine,omitempty"`
	CostRating  *string            `json:"costRating,omitempty"`
	Phone       *string            `json:"phone,omitempty"`
	Hours       *map[string]string `json:"hours,omitempty"`
	Tables      *map[int]int       `json:"tables,omitempty"`
	PhotoURL    *string            `json:"photoUrl,omitempty"`
}

// ToDomainRestaurant конвертирует запрос в domain модель
func (r *CreateRestaurantRequest) ToDomainRestaurant(managerID int64) *domain.Restaurant {
	return &domain.Restaurant{
		ManagerID:   managerID,
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Cuisine:     r.Cuisine,
		CostRating:  r.CostRating,
		Address:     strings.TrimSpace(r.Address),
		City:        strings.TrimSpace(r.City),
		State:       strings.TrimSpace(r.State),
		ZipCode:     strings.TrimSpace(r.ZipCode),
		Phone:       r.Phone,
		Hours:       r.Hours,
		Tables:      domain.TableInventory(r.Tables),
		PhotoURL:    r.PhotoURL,
	}
}

// Response модели

// RestaurantResponse ответ с данными ресторана
type RestaurantResponse struct {
	ID           int64             `json:"id"`
	ManagerID    int64             `json:"managerId"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Cuisine      string            `json:"cuisine"`
	CostRating   string            `json:"costRating"`
	Address      string            `json:"address"`
	City         string            `json:"city"`
	State        string            `json:"state"`
	ZipCode      string            `json:"zip"`
	Phone        string            `json:"phone"`
	Hours        map[string]string `json:"hours"`
	Tables       map[int]int       `json:"tables"`
	Latitude     *float64          `json:"latitude,omitempty"`
	Longitude    *float64          `json:"longitude,omitempty"`
	PhotoURL     *string           `json:"photoUrl,omitempty"`
	AvgRating    float64           `json:"avgRating"`
	TotalReviews int               `json:"totalReviews"`
	IsApproved   bool              `json:"isApproved"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// RestaurantListResponse ответ со списком ресторанов
type RestaurantListResponse struct {
	Restaurants []RestaurantResponse `json:"restaurants"`
}

// RestaurantDetailsResponse детали ресторана для публичной страницы
type RestaurantDetailsResponse struct {
	Restaurant    RestaurantResponse `json:"restaurant"`
	BookingsToday int64              `json:"bookingsToday"`
}

// Методы конвертации

// FromDomainRestaurant конвертирует domain модель в DTO
func FromDomainRestaurant(r *domain.Restaurant) *RestaurantResponse {
	if r == nil {
		return nil
	}

	return &RestaurantResponse{
		ID:           r.ID,
		ManagerID:    r.ManagerID,
		Name:         r.Name,
		Description:  r.Description,
		Cuisine:      r.Cuisine,
		CostRating:   r.CostRating,
		Address:      r.Address,
		City:         r.City,
		State:        r.State,
		ZipCode:      r.ZipCode,
		Phone:        r.Phone,
		Hours:        r.Hours,
		Tables:       map[int]int(r.Tables),
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		PhotoURL:     r.PhotoURL,
		AvgRating:    r.AvgRating,
		TotalReviews: r.TotalReviews,
		IsApproved:   r.IsApproved,
		CreatedAt:    r.CreatedAt,
	}
}

// FromDomainRestaurantList конвертирует список domain моделей в DTO
func FromDomainRestaurantList(restaurants []*domain.Restaurant) *RestaurantListResponse {
	result := make([]RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		result = append(result, *FromDomainRestaurant(r))
	}

	return &RestaurantListResponse{Restaurants: result}
}
