package get_restaurant

import (
	"context"
	"time"

	restaurantsService "github.com/thalibook/thalibook-api/internal/service/restaurants"
	"github.com/thalibook/thalibook-api/internal/service/restaurants/models"
)

var _ RestaurantService = (*restaurantsService.Service)(nil)

type RestaurantService interface {
	GetDetails(ctx context.Context, id int64, today time.Time) (*models.RestaurantDetailsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
