package create_restaurant

import (
	"context"

	restaurantsService "github.com/thalibook/thalibook-api/internal/service/restaurants"
	"github.com/thalibook/thalibook-api/internal/service/restaurants/models"
)

var _ RestaurantService = (*restaurantsService.Service)(nil)

type RestaurantService interface {
	Create(ctx context.Context, managerID int64, req *models.CreateRestaurantRequest) (*models.RestaurantResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
