package pending_restaurants

import (
	"context"

	restaurantsService "github.com/thalibook/thalibook-api/internal/service/restaurants"
	"github.com/thalibook/thalibook-api/internal/service/restaurants/models"
)

var _ RestaurantService = (*restaurantsService.Service)(nil)

type RestaurantService interface {
	ListPending(ctx context.Context) (*models.RestaurantListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
